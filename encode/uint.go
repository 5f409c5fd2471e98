package encode

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/stewi1014/phisave/encio"
)

// NewUint8 returns a new uint8 Encodable.
func NewUint8(ty reflect.Type) *Uint8 {
	if ty.Kind() != reflect.Uint8 {
		panic(encio.NewError(encio.ErrBadType, fmt.Sprintf("%v is not of uint8 kind", ty.String()), 0))
	}
	return &Uint8{
		ty: ty,
	}
}

// Uint8 is an Encodable for uint8s, encoded in 8 bits.
type Uint8 struct {
	ty reflect.Type
}

// Size implements Encodable.
func (e *Uint8) Size() int { return 8 }

// Type implements Encodable.
func (e *Uint8) Type() reflect.Type { return e.ty }

// Encode implements Encodable.
func (e *Uint8) Encode(ptr unsafe.Pointer, w *encio.BitWriter) error {
	checkPtr(ptr)
	w.PutUint8(*(*uint8)(ptr))
	return nil
}

// Decode implements Encodable.
func (e *Uint8) Decode(ptr unsafe.Pointer, r *encio.BitReader, s *Siblings) error {
	checkPtr(ptr)
	n, err := r.Uint8()
	if err != nil {
		return err
	}
	*(*uint8)(ptr) = n
	return nil
}

// NewUint16 returns a new uint16 Encodable.
func NewUint16(ty reflect.Type) *Uint16 {
	if ty.Kind() != reflect.Uint16 {
		panic(encio.NewError(encio.ErrBadType, fmt.Sprintf("%v is not of uint16 kind", ty.String()), 0))
	}
	return &Uint16{
		ty: ty,
	}
}

// Uint16 is an Encodable for uint16s, encoded little-endian in 16 bits.
type Uint16 struct {
	ty reflect.Type
}

// Size implements Encodable.
func (e *Uint16) Size() int { return 16 }

// Type implements Encodable.
func (e *Uint16) Type() reflect.Type { return e.ty }

// Encode implements Encodable.
func (e *Uint16) Encode(ptr unsafe.Pointer, w *encio.BitWriter) error {
	checkPtr(ptr)
	w.PutUint16(*(*uint16)(ptr))
	return nil
}

// Decode implements Encodable.
func (e *Uint16) Decode(ptr unsafe.Pointer, r *encio.BitReader, s *Siblings) error {
	checkPtr(ptr)
	n, err := r.Uint16()
	if err != nil {
		return err
	}
	*(*uint16)(ptr) = n
	return nil
}

// NewUint32 returns a new uint32 Encodable.
func NewUint32(ty reflect.Type) *Uint32 {
	if ty.Kind() != reflect.Uint32 {
		panic(encio.NewError(encio.ErrBadType, fmt.Sprintf("%v is not of uint32 kind", ty.String()), 0))
	}
	return &Uint32{
		ty: ty,
	}
}

// Uint32 is an Encodable for uint32s, encoded little-endian in 32 bits.
type Uint32 struct {
	ty reflect.Type
}

// Size implements Encodable.
func (e *Uint32) Size() int { return 32 }

// Type implements Encodable.
func (e *Uint32) Type() reflect.Type { return e.ty }

// Encode implements Encodable.
func (e *Uint32) Encode(ptr unsafe.Pointer, w *encio.BitWriter) error {
	checkPtr(ptr)
	w.PutUint32(*(*uint32)(ptr))
	return nil
}

// Decode implements Encodable.
func (e *Uint32) Decode(ptr unsafe.Pointer, r *encio.BitReader, s *Siblings) error {
	checkPtr(ptr)
	n, err := r.Uint32()
	if err != nil {
		return err
	}
	*(*uint32)(ptr) = n
	return nil
}
