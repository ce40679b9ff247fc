// Package utcdynamo stores instants as DynamoDB number attributes.
//
// The attribute holds the instant's tick count, so values sort and compare
// correctly in key conditions. Wrap struct fields in Attribute to have
// attributevalue.MarshalMap and UnmarshalMap pick up the encoding.
package utcdynamo

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/aelexs/utctime/pkg/utctime"
)

// ErrUnsupportedAttribute is returned when decoding anything other than a
// number or NULL attribute.
var ErrUnsupportedAttribute = errors.New("unsupported attribute type for instant")

// Attribute wraps an Instant for use as a DynamoDB item field.
type Attribute struct {
	utctime.Instant
}

// MarshalDynamoDBAttributeValue implements attributevalue.Marshaler.
func (a Attribute) MarshalDynamoDBAttributeValue() (types.AttributeValue, error) {
	return Marshal(a.Instant), nil
}

// UnmarshalDynamoDBAttributeValue implements attributevalue.Unmarshaler.
func (a *Attribute) UnmarshalDynamoDBAttributeValue(av types.AttributeValue) error {
	i, err := Unmarshal(av)
	if err != nil {
		return err
	}
	a.Instant = i
	return nil
}

// Marshal returns i as a number attribute holding its tick count.
func Marshal(i utctime.Instant) types.AttributeValue {
	return &types.AttributeValueMemberN{Value: strconv.FormatInt(i.Ticks(), 10)}
}

// Unmarshal decodes a number attribute written by Marshal. NULL and nil
// decode to the zero Instant.
func Unmarshal(av types.AttributeValue) (utctime.Instant, error) {
	switch v := av.(type) {
	case nil, *types.AttributeValueMemberNULL:
		return utctime.Instant{}, nil
	case *types.AttributeValueMemberN:
		ticks, err := utctime.ParseEpoch(v.Value)
		if err != nil {
			return utctime.Instant{}, fmt.Errorf("decode instant attribute: %w", err)
		}
		return utctime.FromTicks(ticks), nil
	default:
		return utctime.Instant{}, fmt.Errorf("%w: %T", ErrUnsupportedAttribute, av)
	}
}

// Ensure Attribute implements the SDK interfaces at compile time.
var (
	_ attributevalue.Marshaler   = Attribute{}
	_ attributevalue.Unmarshaler = (*Attribute)(nil)
)
