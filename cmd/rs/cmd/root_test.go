package cmd

import "testing"

func TestSubcommandsRegistered(t *testing.T) {
	want := map[string]bool{"list": false, "capture": false, "serve": false}
	for _, c := range rootCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestCaptureFlagConflict(t *testing.T) {
	captureSerial = ""
	capturePlay = "session.bag"
	captureRecord = "out.bag"
	defer func() { capturePlay, captureRecord = "", "" }()

	if err := runCapture(captureCmd, nil); err == nil {
		t.Fatal("expected --from-file/--record conflict error")
	}
}
