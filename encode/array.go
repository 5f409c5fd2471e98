package encode

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/stewi1014/phisave/encio"
)

// NewArray returns a new array Encodable.
// Elements are created from src with the element options in opts, and padded according to opts.Align.
func NewArray(ty reflect.Type, opts Options, src Source) *Array {
	if ty.Kind() != reflect.Array {
		panic(encio.NewError(encio.ErrBadType, fmt.Sprintf("%v is not an Array", ty), 0))
	}
	if opts.Length != nil {
		panic(encio.NewError(encio.ErrBadConfig, fmt.Sprintf("%v has a fixed length, but was given %v", ty, opts.Length), 0))
	}

	return &Array{
		ty:    ty,
		len:   ty.Len(),
		size:  ty.Elem().Size(),
		elem:  src.NewEncodable(ty.Elem(), opts.elem(), src),
		align: opts.Align,
	}
}

// Array is an Encodable for arrays.
type Array struct {
	ty    reflect.Type
	elem  Encodable
	len   int
	size  uintptr
	align Alignment
}

// Size implements Encodable.
func (e *Array) Size() int {
	return e.align.size(e.elem.Size(), e.len)
}

// Type implements Encodable.
func (e *Array) Type() reflect.Type { return e.ty }

// Encode implements Encodable.
func (e *Array) Encode(ptr unsafe.Pointer, w *encio.BitWriter) error {
	checkPtr(ptr)
	for i := 0; i < e.len; i++ {
		eptr := unsafe.Pointer(uintptr(ptr) + uintptr(i)*e.size)
		if err := e.elem.Encode(eptr, w); err != nil {
			return err
		}
		e.align.encodeElem(w, i, e.len)
	}
	return nil
}

// Decode implments Encodable.
func (e *Array) Decode(ptr unsafe.Pointer, r *encio.BitReader, s *Siblings) error {
	checkPtr(ptr)
	for i := 0; i < e.len; i++ {
		eptr := unsafe.Pointer(uintptr(ptr) + uintptr(i)*e.size)
		if err := e.elem.Decode(eptr, r, s); err != nil {
			return err
		}
		if err := e.align.decodeElem(r, i, e.len); err != nil {
			return err
		}
	}
	return nil
}
