package avs

import "testing"

func TestStripExtendedLengthPrefix(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "drive letter path is stripped",
			in:   `\\?\C:\Program Files (x86)\AviSynth\avisynth.dll`,
			want: `C:\Program Files (x86)\AviSynth\avisynth.dll`,
		},
		{
			name: "lowercase drive letter is stripped",
			in:   `\\?\d:\avisynth.dll`,
			want: `d:\avisynth.dll`,
		},
		{
			name: "bare drive is stripped",
			in:   `\\?\C:`,
			want: `C:`,
		},
		{
			name: "UNC extended prefix is kept",
			in:   `\\?\UNC\server\share\avisynth.dll`,
			want: `\\?\UNC\server\share\avisynth.dll`,
		},
		{
			name: "volume GUID prefix is kept",
			in:   `\\?\Volume{b75e2c83-0000-0000-0000-602f00000000}\avisynth.dll`,
			want: `\\?\Volume{b75e2c83-0000-0000-0000-602f00000000}\avisynth.dll`,
		},
		{
			name: "missing colon keeps prefix",
			in:   `\\?\CX\avisynth.dll`,
			want: `\\?\CX\avisynth.dll`,
		},
		{
			name: "plain path untouched",
			in:   `C:\Windows\System32\avisynth.dll`,
			want: `C:\Windows\System32\avisynth.dll`,
		},
		{
			name: "unix path untouched",
			in:   "/usr/lib/libavisynth.so",
			want: "/usr/lib/libavisynth.so",
		},
		{
			name: "too short to strip",
			in:   `\\?\C`,
			want: `\\?\C`,
		},
		{
			name: "empty",
			in:   "",
			want: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := stripExtendedLengthPrefix(tc.in); got != tc.want {
				t.Errorf("stripExtendedLengthPrefix(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
