package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/avdedit/internal/domain/entity"
)

func TestClassify_KnownKeys(t *testing.T) {
	tests := []struct {
		key      string
		expected entity.Classification
	}{
		{"PlayStore.enabled", entity.RealBoolean},
		{"hw.arc", entity.RealBoolean},
		{"fastboot.forceChosenSnapshotBoot", entity.YesNoBoolean},
		{"fastboot.forceColdBoot", entity.YesNoBoolean},
		{"fastboot.forceFastBoot", entity.YesNoBoolean},
		{"hw.accelerometer", entity.YesNoBoolean},
		{"hw.audioInput", entity.YesNoBoolean},
		{"hw.audioOutput", entity.YesNoBoolean},
		{"hw.battery", entity.YesNoBoolean},
		{"hw.dPad", entity.YesNoBoolean},
		{"hw.gps", entity.YesNoBoolean},
		{"hw.gpu.enabled", entity.YesNoBoolean},
		{"hw.keyboard", entity.YesNoBoolean},
		{"hw.mainKeys", entity.YesNoBoolean},
		{"hw.sdCard", entity.YesNoBoolean},
		{"hw.sensors.orientation", entity.YesNoBoolean},
		{"hw.sensors.proximity", entity.YesNoBoolean},
		{"hw.trackBall", entity.YesNoBoolean},
		{"showDeviceFrame", entity.YesNoBoolean},
		{"skin.dynamic", entity.YesNoBoolean},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.expected, entity.Classify(tt.key))
			// Pure lookup: repeated calls agree.
			assert.Equal(t, entity.Classify(tt.key), entity.Classify(tt.key))
		})
	}

	assert.Len(t, entity.ClassifiedKeys(), len(tests))
}

func TestClassify_UnknownKeysAreFreeText(t *testing.T) {
	for _, key := range []string{
		"",
		"avd.ini.displayname",
		"hw.ramSize",
		"playstore.enabled", // case-sensitive
		"hw.gps ",
		"hw",
	} {
		assert.Equal(t, entity.FreeText, entity.Classify(key), "key %q", key)
	}
}

func TestClassifiedKeys_Sorted(t *testing.T) {
	keys := entity.ClassifiedKeys()
	require.NotEmpty(t, keys)
	assert.IsIncreasing(t, keys)
	assert.Equal(t, "PlayStore.enabled", keys[0])
}

func TestClassification_String(t *testing.T) {
	assert.Equal(t, "FreeText", entity.FreeText.String())
	assert.Equal(t, "RealBoolean", entity.RealBoolean.String())
	assert.Equal(t, "YesNoBoolean", entity.YesNoBoolean.String())
	assert.False(t, entity.FreeText.IsBoolean())
	assert.True(t, entity.RealBoolean.IsBoolean())
	assert.True(t, entity.YesNoBoolean.IsBoolean())
}

func TestClassification_Decode(t *testing.T) {
	tests := []struct {
		name     string
		class    entity.Classification
		raw      string
		expected bool
	}{
		{"real true", entity.RealBoolean, "true", true},
		{"real false", entity.RealBoolean, "false", false},
		{"real uppercase", entity.RealBoolean, "TRUE", false},
		{"real yes", entity.RealBoolean, "yes", false},
		{"real empty", entity.RealBoolean, "", false},
		{"yesno yes", entity.YesNoBoolean, "yes", true},
		{"yesno no", entity.YesNoBoolean, "no", false},
		{"yesno uppercase", entity.YesNoBoolean, "Yes", false},
		{"yesno true", entity.YesNoBoolean, "true", false},
		{"yesno garbage", entity.YesNoBoolean, "maybe", false},
		{"free text", entity.FreeText, "yes", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.class.Decode(tt.raw))
		})
	}
}

func TestClassification_Encode(t *testing.T) {
	tests := []struct {
		class    entity.Classification
		value    bool
		expected string
	}{
		{entity.RealBoolean, true, "true"},
		{entity.RealBoolean, false, "false"},
		{entity.YesNoBoolean, true, "yes"},
		{entity.YesNoBoolean, false, "no"},
	}

	for _, tt := range tests {
		raw, err := tt.class.Encode(tt.value)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, raw)
		assert.Equal(t, tt.value, tt.class.Decode(raw))
	}

	_, err := entity.FreeText.Encode(true)
	assert.ErrorIs(t, err, entity.ErrNotBoolean)
}
