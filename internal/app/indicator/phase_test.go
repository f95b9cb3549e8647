package indicator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"veil/internal/config/logger"
)

func Test_PhaseFSM(t *testing.T) {
	tests := []struct {
		name   string
		events []string
		want   string
		error  bool
	}{
		{name: "starts idle", events: nil, want: Idle},
		{name: "armed", events: []string{Arm}, want: PendingShow},
		{name: "quelled", events: []string{Arm, Quell}, want: Idle},
		{name: "shown", events: []string{Arm, Show}, want: Showing},
		{name: "settling", events: []string{Arm, Show, Settle}, want: PendingHide},
		{name: "extended", events: []string{Arm, Show, Settle, Extend}, want: Showing},
		{name: "hidden", events: []string{Arm, Show, Settle, Hide}, want: Idle},
		{name: "show from idle", events: []string{Show}, want: Idle, error: true},
		{name: "arm twice", events: []string{Arm, Arm}, want: PendingShow, error: true},
		{name: "hide while showing", events: []string{Arm, Show, Hide}, want: Showing, error: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			machine := newPhaseFSM(logger.NewNopLogger())

			var err error
			for _, event := range tt.events {
				err = machine.Event(context.Background(), event)
			}

			if tt.error {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			assert.Equal(t, tt.want, machine.Current())
		})
	}
}

func Test_ArmEvent(t *testing.T) {
	assert.Equal(t, Arm, armEvent(false))
	assert.Equal(t, Settle, armEvent(true))
}

func Test_FireEvent(t *testing.T) {
	tests := []struct {
		name       string
		wasShowing bool
		showing    bool
		want       string
	}{
		{name: "show", wasShowing: false, showing: true, want: Show},
		{name: "quell", wasShowing: false, showing: false, want: Quell},
		{name: "extend", wasShowing: true, showing: true, want: Extend},
		{name: "hide", wasShowing: true, showing: false, want: Hide},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fireEvent(tt.wasShowing, tt.showing))
		})
	}
}
