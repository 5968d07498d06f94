package model

import (
	"encoding/base64"
	"fmt"
	"reflect"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsoncodec"
	"go.mongodb.org/mongo-driver/bson/bsonrw"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

var (
	tFlex      = reflect.TypeOf(Flex(""))
	tTimestamp = reflect.TypeOf(Timestamp{})
)

// BsonRegistry returns the codec registry the document-store provider
// connects with. It carries the flexible decoders so that a collection
// holding a mix of strings, numbers, booleans and dates in the same
// logical field still materializes into the canonical string-typed model.
func BsonRegistry() *bsoncodec.Registry {
	reg := bson.NewRegistry()
	reg.RegisterTypeDecoder(tFlex, bsoncodec.ValueDecoderFunc(decodeFlexValue))
	reg.RegisterTypeEncoder(tFlex, bsoncodec.ValueEncoderFunc(encodeFlexValue))
	reg.RegisterTypeDecoder(tTimestamp, bsoncodec.ValueDecoderFunc(decodeTimestampValue))
	reg.RegisterTypeEncoder(tTimestamp, bsoncodec.ValueEncoderFunc(encodeTimestampValue))
	return reg
}

// decodeFlexValue normalizes any BSON type into a Flex string. It mirrors
// the decoding table of the JSON side: numbers keep their default
// formatting, booleans lowercase, datetimes become UTC wire-format text,
// ObjectIds their hex form, binary base64, and arrays/documents their JSON
// text. Unrecognized types are skipped and decode to "".
func decodeFlexValue(_ bsoncodec.DecodeContext, vr bsonrw.ValueReader, val reflect.Value) error {
	if !val.CanSet() || val.Type() != tFlex {
		return bsoncodec.ValueDecoderError{Name: "decodeFlexValue", Types: []reflect.Type{tFlex}, Received: val}
	}

	var s string
	switch vr.Type() {
	case bsontype.String:
		v, err := vr.ReadString()
		if err != nil {
			return err
		}
		s = v
	case bsontype.Int32:
		v, err := vr.ReadInt32()
		if err != nil {
			return err
		}
		s = strconv.FormatInt(int64(v), 10)
	case bsontype.Int64:
		v, err := vr.ReadInt64()
		if err != nil {
			return err
		}
		s = strconv.FormatInt(v, 10)
	case bsontype.Double:
		v, err := vr.ReadDouble()
		if err != nil {
			return err
		}
		s = strconv.FormatFloat(v, 'g', -1, 64)
	case bsontype.Decimal128:
		v, err := vr.ReadDecimal128()
		if err != nil {
			return err
		}
		s = v.String()
	case bsontype.Boolean:
		v, err := vr.ReadBoolean()
		if err != nil {
			return err
		}
		s = strconv.FormatBool(v)
	case bsontype.DateTime:
		ms, err := vr.ReadDateTime()
		if err != nil {
			return err
		}
		s = time.UnixMilli(ms).UTC().Format(TimestampLayout)
	case bsontype.ObjectID:
		v, err := vr.ReadObjectID()
		if err != nil {
			return err
		}
		s = v.Hex()
	case bsontype.Binary:
		b, _, err := vr.ReadBinary()
		if err != nil {
			return err
		}
		s = base64.StdEncoding.EncodeToString(b)
	case bsontype.Array, bsontype.EmbeddedDocument:
		t, b, err := bsonrw.NewCopier().CopyValueToBytes(vr)
		if err != nil {
			return err
		}
		s = bson.RawValue{Type: t, Value: b}.String()
	case bsontype.Null:
		if err := vr.ReadNull(); err != nil {
			return err
		}
	case bsontype.Undefined:
		if err := vr.ReadUndefined(); err != nil {
			return err
		}
	case bsontype.MinKey:
		if err := vr.ReadMinKey(); err != nil {
			return err
		}
		s = "MinKey"
	case bsontype.MaxKey:
		if err := vr.ReadMaxKey(); err != nil {
			return err
		}
		s = "MaxKey"
	case bsontype.Timestamp:
		t, i, err := vr.ReadTimestamp()
		if err != nil {
			return err
		}
		s = strconv.FormatInt(int64(t)<<32|int64(i), 10)
	case bsontype.JavaScript:
		v, err := vr.ReadJavascript()
		if err != nil {
			return err
		}
		s = v
	case bsontype.Symbol:
		v, err := vr.ReadSymbol()
		if err != nil {
			return err
		}
		s = v
	case bsontype.Regex:
		pattern, options, err := vr.ReadRegex()
		if err != nil {
			return err
		}
		s = fmt.Sprintf("/%s/%s", pattern, options)
	default:
		if err := vr.Skip(); err != nil {
			return err
		}
	}

	val.SetString(s)
	return nil
}

// encodeFlexValue is the identity direction: a Flex value is stored back
// as a plain string.
func encodeFlexValue(_ bsoncodec.EncodeContext, vw bsonrw.ValueWriter, val reflect.Value) error {
	if val.Type() != tFlex {
		return bsoncodec.ValueEncoderError{Name: "encodeFlexValue", Types: []reflect.Type{tFlex}, Received: val}
	}
	return vw.WriteString(val.String())
}

// decodeTimestampValue accepts a native datetime or a string-formatted
// date. Anything else silently degrades to the zero value; a stored null
// on a *Timestamp field is handled by the pointer codec and stays nil.
func decodeTimestampValue(_ bsoncodec.DecodeContext, vr bsonrw.ValueReader, val reflect.Value) error {
	if !val.CanSet() || val.Type() != tTimestamp {
		return bsoncodec.ValueDecoderError{Name: "decodeTimestampValue", Types: []reflect.Type{tTimestamp}, Received: val}
	}

	var t time.Time
	switch vr.Type() {
	case bsontype.DateTime:
		ms, err := vr.ReadDateTime()
		if err != nil {
			return err
		}
		t = time.UnixMilli(ms).UTC()
	case bsontype.String:
		s, err := vr.ReadString()
		if err != nil {
			return err
		}
		if parsed, ok := Flex(s).Time(); ok {
			t = parsed.UTC()
		}
	case bsontype.Null:
		if err := vr.ReadNull(); err != nil {
			return err
		}
	default:
		if err := vr.Skip(); err != nil {
			return err
		}
	}

	val.Set(reflect.ValueOf(Timestamp{Time: t}))
	return nil
}

// encodeTimestampValue re-encodes a structured date into the store's
// native epoch-milliseconds representation.
func encodeTimestampValue(_ bsoncodec.EncodeContext, vw bsonrw.ValueWriter, val reflect.Value) error {
	if val.Type() != tTimestamp {
		return bsoncodec.ValueEncoderError{Name: "encodeTimestampValue", Types: []reflect.Type{tTimestamp}, Received: val}
	}
	ts := val.Interface().(Timestamp)
	return vw.WriteDateTime(ts.UTC().UnixMilli())
}
