package arena

import "unsafe"

func ptrOf(b []byte) unsafe.Pointer {
	return unsafe.Pointer(unsafe.SliceData(b))
}

func unsafePtr[T any](p *T) unsafe.Pointer {
	return unsafe.Pointer(p)
}
