package congress

import (
	"encoding/json"
	"fmt"
	"net/url"
	"reflect"
	"strings"
)

// BillType identifies the kind of measure. Values are the lowercase path tokens.
type BillType string

// Bill types.
const (
	BillTypeHouse                      BillType = "hr"
	BillTypeSenate                     BillType = "s"
	BillTypeHouseJointResolution       BillType = "hjres"
	BillTypeSenateJointResolution      BillType = "sjres"
	BillTypeHouseConcurrentResolution  BillType = "hconres"
	BillTypeSenateConcurrentResolution BillType = "sconres"
	BillTypeHouseResolution            BillType = "hres"
	BillTypeSenateResolution           BillType = "sres"
)

// BillTypes lists every bill type in the order Congress.gov documents them.
var BillTypes = []BillType{
	BillTypeHouse,
	BillTypeSenate,
	BillTypeHouseJointResolution,
	BillTypeSenateJointResolution,
	BillTypeHouseConcurrentResolution,
	BillTypeSenateConcurrentResolution,
	BillTypeHouseResolution,
	BillTypeSenateResolution,
}

// ParseBillType matches value against the known bill types, ignoring case.
func ParseBillType(value string) (BillType, error) {
	for _, candidate := range BillTypes {
		if strings.EqualFold(value, string(candidate)) {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownBillType, value)
}

// String implements fmt.Stringer.
func (t BillType) String() string {
	return string(t)
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *BillType) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, t, ParseBillType)
}

// AmendmentType identifies the chamber an amendment was offered in.
type AmendmentType string

// Amendment types.
const (
	AmendmentTypeHouse  AmendmentType = "hamdt"
	AmendmentTypeSenate AmendmentType = "samdt"
	// AmendmentTypeSenateUnprinted covers unprinted Senate amendments from older congresses.
	AmendmentTypeSenateUnprinted AmendmentType = "suamdt"
)

// AmendmentTypes lists every amendment type.
var AmendmentTypes = []AmendmentType{
	AmendmentTypeHouse,
	AmendmentTypeSenate,
	AmendmentTypeSenateUnprinted,
}

// ParseAmendmentType matches value against the known amendment types, ignoring case.
func ParseAmendmentType(value string) (AmendmentType, error) {
	for _, candidate := range AmendmentTypes {
		if strings.EqualFold(value, string(candidate)) {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownAmendmentType, value)
}

// String implements fmt.Stringer.
func (t AmendmentType) String() string {
	return string(t)
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *AmendmentType) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, t, ParseAmendmentType)
}

// Chamber is a chamber of Congress.
type Chamber string

// Chambers.
const (
	ChamberHouse  Chamber = "House"
	ChamberSenate Chamber = "Senate"
)

// houseLongName is how congress sessions and member terms name the House.
const houseLongName = "House of Representatives"

// ParseChamber matches value against House or Senate, ignoring case.
func ParseChamber(value string) (Chamber, error) {
	switch {
	case strings.EqualFold(value, string(ChamberHouse)), strings.EqualFold(value, houseLongName):
		return ChamberHouse, nil
	case strings.EqualFold(value, string(ChamberSenate)):
		return ChamberSenate, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownChamber, value)
	}
}

// String implements fmt.Stringer.
func (c Chamber) String() string {
	return string(c)
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *Chamber) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, c, ParseChamber)
}

// ChamberCode is the single-letter chamber code used by titles and actions.
type ChamberCode string

// Chamber codes.
const (
	ChamberCodeHouse  ChamberCode = "H"
	ChamberCodeSenate ChamberCode = "S"
)

// ParseChamberCode matches value against H or S, ignoring case.
func ParseChamberCode(value string) (ChamberCode, error) {
	switch {
	case strings.EqualFold(value, string(ChamberCodeHouse)):
		return ChamberCodeHouse, nil
	case strings.EqualFold(value, string(ChamberCodeSenate)):
		return ChamberCodeSenate, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownChamber, value)
	}
}

// String implements fmt.Stringer.
func (c ChamberCode) String() string {
	return string(c)
}

// Chamber returns the chamber the code stands for.
func (c ChamberCode) Chamber() Chamber {
	if c == ChamberCodeSenate {
		return ChamberSenate
	}

	return ChamberHouse
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *ChamberCode) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, c, ParseChamberCode)
}

// ActionType classifies a bill action. Upstream adds values over time, so
// unknown types decode as-is.
type ActionType string

// Known action types.
const (
	ActionTypeBecameLaw            ActionType = "BecameLaw"
	ActionTypePresident            ActionType = "President"
	ActionTypeCommittee            ActionType = "Committee"
	ActionTypeIntroReferral        ActionType = "IntroReferral"
	ActionTypeCalendars            ActionType = "Calendars"
	ActionTypeFloor                ActionType = "Floor"
	ActionTypeDischarge            ActionType = "Discharge"
	ActionTypeVeto                 ActionType = "Veto"
	ActionTypeResolvingDifferences ActionType = "ResolvingDifferences"
	ActionTypeNotUsed              ActionType = "NotUsed"
)

// Sort orders list results by update date.
type Sort string

// Sort orders. The values are the tokens as they appear in an encoded query string.
const (
	SortUpdateDateAscending  Sort = "updateDate+asc"
	SortUpdateDateDescending Sort = "updateDate+desc"
)

// ParseSort accepts the encoded token ("updateDate+asc") or its decoded form
// ("updateDate asc"), ignoring case.
func ParseSort(value string) (Sort, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(value), " ", "+")

	switch {
	case strings.EqualFold(normalized, string(SortUpdateDateAscending)):
		return SortUpdateDateAscending, nil
	case strings.EqualFold(normalized, string(SortUpdateDateDescending)):
		return SortUpdateDateDescending, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSort, value)
	}
}

// String implements fmt.Stringer.
func (s Sort) String() string {
	return string(s)
}

// EncodeValues implements query.Encoder. The form encoder turns the space
// into '+', producing the token the API expects.
func (s Sort) EncodeValues(key string, values *url.Values) error {
	values.Set(key, strings.ReplaceAll(string(s), "+", " "))

	return nil
}

// unmarshalEnum decodes a JSON string through parse and reports failures as
// *json.UnmarshalTypeError so the decoder can attach the field path.
func unmarshalEnum[T ~string](data []byte, target *T, parse func(string) (T, error)) error {
	if string(data) == "null" {
		return nil
	}

	var raw string

	err := json.Unmarshal(data, &raw)
	if err != nil {
		return &json.UnmarshalTypeError{Value: describeJSON(data), Type: reflect.TypeFor[T]()}
	}

	value, err := parse(raw)
	if err != nil {
		return &json.UnmarshalTypeError{Value: "string " + raw, Type: reflect.TypeFor[T]()}
	}

	*target = value

	return nil
}
