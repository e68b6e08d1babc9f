package avs

import "math"

// Variant tags used by the engine's tagged value union. Only the error
// and numeric tags are meaningfully consumed here; every other tag
// leaves the version undetermined.
const (
	tagBool   = 'b'
	tagClip   = 'c'
	tagError  = 'e'
	tagFloat  = 'f'
	tagInt    = 'i'
	tagString = 's'
	tagArray  = 'a'
)

// Value mirrors the engine's 16-byte AVS_Value ABI: a 16-bit variant
// tag, a 16-bit array length, and an 8-byte union holding the payload
// (pointer, integer, or 32-bit float in the low bytes). The layout is
// fixed by the external library and crosses the FFI boundary by value.
type Value struct {
	Tag       int16
	ArraySize int16
	Pad       int32
	Data      uint64
}

// IsError reports whether the value carries the engine's error tag.
func (v Value) IsError() bool {
	return v.Tag == tagError
}

// IsFloat reports whether the value is numeric. The engine stores whole
// numbers under the int tag, so both tags count, matching avs_is_float.
func (v Value) IsFloat() bool {
	return v.Tag == tagFloat || v.Tag == tagInt
}

// Float widens the numeric payload to a double, matching avs_as_float:
// the integer payload when the int tag is set, otherwise the C float
// stored in the low bytes of the union.
func (v Value) Float() float64 {
	if v.Tag == tagInt {
		return float64(int32(uint32(v.Data)))
	}
	return float64(math.Float32frombits(uint32(v.Data)))
}

// words splits the value into the two machine words of its in-memory
// layout, low word first. Calling conventions that move a 16-byte
// composite through an integer register pair take exactly these words.
func (v Value) words() (lo, hi uint64) {
	lo = uint64(uint16(v.Tag)) | uint64(uint16(v.ArraySize))<<16 | uint64(uint32(v.Pad))<<32
	return lo, v.Data
}

// valueFromWords is the inverse of words, rebuilding a value from the
// register pair a call returned.
func valueFromWords(lo, hi uint64) Value {
	return Value{
		Tag:       int16(uint16(lo)),
		ArraySize: int16(uint16(lo >> 16)),
		Pad:       int32(uint32(lo >> 32)),
		Data:      hi,
	}
}

// emptyArgs builds the empty argument list passed to invoke, the
// equivalent of avs_new_value_array(NULL, 0).
func emptyArgs() Value {
	return Value{Tag: tagArray}
}

func floatValue(f float64) Value {
	return Value{Tag: tagFloat, Data: uint64(math.Float32bits(float32(f)))}
}

func intValue(i int32) Value {
	return Value{Tag: tagInt, Data: uint64(uint32(i))}
}

func errorValue() Value {
	return Value{Tag: tagError}
}
