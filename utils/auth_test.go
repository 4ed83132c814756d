package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitRoleList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty", input: "", want: nil},
		{name: "single", input: "Moderators", want: []string{"Moderators"}},
		{name: "several with spaces", input: "Moderators, 123456789012345678 ,Helpers", want: []string{"Moderators", "123456789012345678", "Helpers"}},
		{name: "empty segments dropped", input: ",Moderators,,  ,", want: []string{"Moderators"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, SplitRoleList(tt.input))
		})
	}
}
