package entity

import (
	"maps"
	"slices"
)

// Classification selects how a config.ini value is presented and edited.
type Classification int

const (
	// FreeText values are opaque strings edited verbatim.
	FreeText Classification = iota
	// RealBoolean values are the literals "true" and "false".
	RealBoolean
	// YesNoBoolean values are "yes" for true; anything else reads as false.
	YesNoBoolean
)

// Canonical boolean encodings.
const (
	realTrue  = "true"
	realFalse = "false"
	yesValue  = "yes"
	noValue   = "no"
)

// classificationTable lists every key with a boolean representation.
// Keys missing from the table are FreeText.
var classificationTable = map[string]Classification{
	"PlayStore.enabled":                RealBoolean,
	"hw.arc":                           RealBoolean,
	"fastboot.forceChosenSnapshotBoot": YesNoBoolean,
	"fastboot.forceColdBoot":           YesNoBoolean,
	"fastboot.forceFastBoot":           YesNoBoolean,
	"hw.accelerometer":                 YesNoBoolean,
	"hw.audioInput":                    YesNoBoolean,
	"hw.audioOutput":                   YesNoBoolean,
	"hw.battery":                       YesNoBoolean,
	"hw.dPad":                          YesNoBoolean,
	"hw.gps":                           YesNoBoolean,
	"hw.gpu.enabled":                   YesNoBoolean,
	"hw.keyboard":                      YesNoBoolean,
	"hw.mainKeys":                      YesNoBoolean,
	"hw.sdCard":                        YesNoBoolean,
	"hw.sensors.orientation":           YesNoBoolean,
	"hw.sensors.proximity":             YesNoBoolean,
	"hw.trackBall":                     YesNoBoolean,
	"showDeviceFrame":                  YesNoBoolean,
	"skin.dynamic":                     YesNoBoolean,
}

// Classify returns the editing representation for key.
func Classify(key string) Classification {
	return classificationTable[key]
}

// ClassifiedKeys returns every key with a boolean representation, sorted.
func ClassifiedKeys() []string {
	return slices.Sorted(maps.Keys(classificationTable))
}

// String returns the classification name.
func (c Classification) String() string {
	switch c {
	case RealBoolean:
		return "RealBoolean"
	case YesNoBoolean:
		return "YesNoBoolean"
	default:
		return "FreeText"
	}
}

// IsBoolean reports whether values of this classification render as a toggle.
func (c Classification) IsBoolean() bool {
	return c == RealBoolean || c == YesNoBoolean
}

// Decode interprets a raw value. Comparison is exact and case-sensitive;
// malformed values read as false. FreeText always decodes to false.
func (c Classification) Decode(raw string) bool {
	switch c {
	case RealBoolean:
		return raw == realTrue
	case YesNoBoolean:
		return raw == yesValue
	default:
		return false
	}
}

// Encode returns the canonical raw value for v.
func (c Classification) Encode(v bool) (string, error) {
	switch c {
	case RealBoolean:
		if v {
			return realTrue, nil
		}
		return realFalse, nil
	case YesNoBoolean:
		if v {
			return yesValue, nil
		}
		return noValue, nil
	default:
		return "", ErrNotBoolean
	}
}
