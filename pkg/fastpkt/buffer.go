package fastpkt

import "unsafe"

// DataPtr is a helper function to cast a data type to a pointer
func DataPtr[T any](data []byte, off int) *T             { return (*T)(unsafe.Pointer(&data[off])) }
func DataPtrICMPHeader(data []byte, off int) *ICMPHeader { return DataPtr[ICMPHeader](data, off) }
