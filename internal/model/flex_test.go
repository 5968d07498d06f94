package model

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestFlexUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Flex
	}{
		{"string", `"Laptop"`, "Laptop"},
		{"integer keeps literal text", `150`, "150"},
		{"float keeps literal text", `149.99`, "149.99"},
		{"negative float", `-5.25`, "-5.25"},
		{"bool true", `true`, "true"},
		{"bool false", `false`, "false"},
		{"null", `null`, ""},
		{"empty string", `""`, ""},
		{"array keeps raw text", `[1,2,3]`, "[1,2,3]"},
		{"object keeps raw text", `{"a":1}`, `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f Flex
			if err := json.Unmarshal([]byte(tt.in), &f); err != nil {
				t.Fatalf("unmarshal %q: %v", tt.in, err)
			}
			if f != tt.want {
				t.Errorf("got %q, want %q", f, tt.want)
			}
		})
	}
}

func TestFlexUnmarshalNeverFails(t *testing.T) {
	var p Product
	raw := `{"name": 42, "current_price": "149.99", "is_active": 1, "target_price": null, "memory_size": true}`
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		t.Fatalf("mixed-type record should decode: %v", err)
	}
	if p.Name != "42" {
		t.Errorf("name: got %q", p.Name)
	}
	if p.CurrentPrice != "149.99" {
		t.Errorf("current_price: got %q", p.CurrentPrice)
	}
	if p.TargetPrice != "" {
		t.Errorf("target_price: got %q, want empty", p.TargetPrice)
	}
	if p.MemorySize != "true" {
		t.Errorf("memory_size: got %q", p.MemorySize)
	}
}

func TestFlexMarshalJSON(t *testing.T) {
	out, err := json.Marshal(Flex("149.99"))
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `"149.99"` {
		t.Errorf("got %s", out)
	}
}

func TestFlexAccessors(t *testing.T) {
	if b, ok := Flex("True").Bool(); !ok || !b {
		t.Error("Bool should accept mixed case true")
	}
	if b, ok := Flex("0").Bool(); !ok || b {
		t.Error("Bool should accept 0 as false")
	}
	if _, ok := Flex("yes-ish").Bool(); ok {
		t.Error("Bool should reject junk")
	}

	if n, ok := Flex(" 30 ").Int(); !ok || n != 30 {
		t.Errorf("Int: got %d, %v", n, ok)
	}
	if _, ok := Flex("30.5").Int(); ok {
		t.Error("Int should reject fractions")
	}

	if d, ok := Flex("149.99").Decimal(); !ok || d.String() != "149.99" {
		t.Errorf("Decimal: got %v, %v", d, ok)
	}
	if _, ok := Flex("N/A").Decimal(); ok {
		t.Error("Decimal should reject junk")
	}

	if ts, ok := Flex("2024-03-01T10:30:00.000Z").Time(); !ok || ts.UTC().Hour() != 10 {
		t.Errorf("Time: got %v, %v", ts, ok)
	}
	if ts, ok := Flex("3/1/2024").Time(); !ok || ts.Month() != time.March {
		t.Errorf("Time short form: got %v, %v", ts, ok)
	}
	if _, ok := Flex("").Time(); ok {
		t.Error("Time should reject empty")
	}
}

func TestBsonRegistryDecodesHeterogeneousTypes(t *testing.T) {
	oid := primitive.NewObjectID()
	when := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)

	doc := bson.D{
		{Key: "_id", Value: oid},
		{Key: "name", Value: "Widget"},
		{Key: "current_price", Value: 149.99},
		{Key: "target_price", Value: int32(150)},
		{Key: "original_price", Value: int64(200)},
		{Key: "is_active", Value: true},
		{Key: "purchased_date", Value: primitive.NewDateTimeFromTime(when)},
		{Key: "url", Value: nil},
		{Key: "category", Value: bson.A{"electronics", int32(1)}},
	}
	raw, err := bson.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}

	var p Product
	if err := bson.UnmarshalWithRegistry(BsonRegistry(), raw, &p); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if p.ID != Flex(oid.Hex()) {
		t.Errorf("_id: got %q, want hex %q", p.ID, oid.Hex())
	}
	if p.Name != "Widget" {
		t.Errorf("name: got %q", p.Name)
	}
	if p.CurrentPrice != "149.99" {
		t.Errorf("double: got %q", p.CurrentPrice)
	}
	if p.TargetPrice != "150" {
		t.Errorf("int32: got %q", p.TargetPrice)
	}
	if p.OriginalPrice != "200" {
		t.Errorf("int64: got %q", p.OriginalPrice)
	}
	if p.IsActive != "true" {
		t.Errorf("bool: got %q", p.IsActive)
	}
	if p.PurchasedDate != "2024-03-01T10:30:00.000Z" {
		t.Errorf("datetime: got %q", p.PurchasedDate)
	}
	if p.URL != "" {
		t.Errorf("null: got %q, want empty", p.URL)
	}
	if !strings.Contains(string(p.Category), "electronics") {
		t.Errorf("array should keep its text form, got %q", p.Category)
	}
}

func TestBsonRegistryEncodesFlexAsString(t *testing.T) {
	p := Product{}
	p.ID = "abc123"
	p.Name = "Widget"
	p.CurrentPrice = "149.99"

	raw, err := bson.MarshalWithRegistry(BsonRegistry(), &p)
	if err != nil {
		t.Fatal(err)
	}

	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		t.Fatal(err)
	}
	if doc["current_price"] != "149.99" {
		t.Errorf("current_price should round-trip as string, got %T %v", doc["current_price"], doc["current_price"])
	}
}

func TestBsonRegistryTimestampRoundTrip(t *testing.T) {
	when := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)

	p := Product{}
	p.ID = "abc123"
	p.CreatedDate = NewTimestamp(when)

	raw, err := bson.MarshalWithRegistry(BsonRegistry(), &p)
	if err != nil {
		t.Fatal(err)
	}

	var out Product
	if err := bson.UnmarshalWithRegistry(BsonRegistry(), raw, &out); err != nil {
		t.Fatal(err)
	}
	if out.CreatedDate == nil || !out.CreatedDate.Equal(when) {
		t.Errorf("created_date: got %v, want %v", out.CreatedDate, when)
	}
	if out.UpdatedDate != nil {
		t.Errorf("absent updated_date should stay nil, got %v", out.UpdatedDate)
	}
}
