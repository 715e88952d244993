// Package mmap provides anonymous memory mappings for off-heap allocation.
//
// MapAnon creates read-write anonymous mappings so that bulk record storage
// can live outside the Go garbage collector's working set. Mappings are
// demand-paged by the OS and returned with Close.
//
// # Platform Support
//
//   - Unix (Linux, macOS, BSD): mmap(2) with MAP_ANON|MAP_PRIVATE
//   - Windows: VirtualAlloc with MEM_RESERVE|MEM_COMMIT
//
// Close is idempotent, but callers must ensure no goroutine touches Bytes()
// after Close returns; the memory is gone.
package mmap
