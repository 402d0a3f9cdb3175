package extview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispositionString(t *testing.T) {
	tests := []struct {
		d    Disposition
		want string
	}{
		{DispositionCurrentTab, "current_tab"},
		{DispositionSingletonTab, "singleton_tab"},
		{DispositionNewForegroundTab, "new_foreground_tab"},
		{DispositionNewBackgroundTab, "new_background_tab"},
		{DispositionNewPopup, "new_popup"},
		{DispositionNewWindow, "new_window"},
		{DispositionSaveToDisk, "save_to_disk"},
		{DispositionOffTheRecord, "off_the_record"},
		{Disposition(99), "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.d.String())
	}
}

func TestKeyEventTypeString(t *testing.T) {
	assert.Equal(t, "raw_key_down", KeyEventRawKeyDown.String())
	assert.Equal(t, "char", KeyEventChar.String())
	assert.Equal(t, "unknown", KeyEventType(99).String())
}
