package enum

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabelSizeUnmarshalJSON(t *testing.T) {
	tests := []struct {
		raw  string
		want LabelSize
	}{
		{`"small"`, LabelSizeSmall},
		{`"medium"`, LabelSizeMedium},
		{`"large"`, LabelSizeLarge},
		{`"custom"`, LabelSizeCustom},
		{`"poster"`, LabelSizeMedium},
		{`""`, LabelSizeMedium},
		{`2`, LabelSizeLarge},
	}

	for _, tt := range tests {
		var s LabelSize
		require.NoError(t, json.Unmarshal([]byte(tt.raw), &s), tt.raw)
		assert.Equal(t, tt.want, s, tt.raw)
	}
}

func TestLabelSizeRoundTrip(t *testing.T) {
	data, err := json.Marshal(LabelSizeSmall)
	require.NoError(t, err)
	assert.Equal(t, `"small"`, string(data))

	var s LabelSize
	require.NoError(t, s.Scan(nil))
	assert.Equal(t, LabelSizeMedium, s)
}
