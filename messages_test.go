package arena

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type MyMessage int

func TestMessages(t *testing.T) {
	var messages Messages[MyMessage]
	reader := messages.Reader()

	// start of frame 1
	messages.Send(1)
	messages.Send(2)

	require.Equal(t, []MyMessage{1, 2}, reader.Read())

	// second call should not read anything
	require.Empty(t, reader.Read())

	// send another one in the same frame, should be received
	messages.Send(3)
	require.Equal(t, []MyMessage{3}, reader.Read())

	// send some more to be read in the next frame
	messages.Send(4)
	messages.Send(5)

	// end of frame 1
	messages.Update()

	// frame 2
	require.Equal(t, []MyMessage{4, 5}, reader.Read())

	messages.Send(6)
	messages.Send(7)

	// end of frame 2
	messages.Update()

	// frame 3, just write one message and then end the frame
	messages.Send(8)
	messages.Update()

	// frame 4: messages from frame 2 were not picked up and are gone now,
	// messages from frame 3 are still readable
	require.Equal(t, []MyMessage{8}, reader.Read())
}

func TestMessagesRotatedByApp(t *testing.T) {
	var app App

	messages := &Messages[MyMessage]{}
	RotateMessages(&app, messages)

	app.AddSystems(FixedUpdate, func(*World, *Commands, FixedTime) {
		messages.Send(1)
	})

	late := messages.Reader()

	// one step per frame
	app.Update(DefaultStepInterval)
	app.Update(DefaultStepInterval)
	app.Update(DefaultStepInterval)

	// a frame ends with the rotation, so only the message of the last frame survives
	require.Equal(t, []MyMessage{1}, late.Read())
}

func TestMessagesSendOnNil(t *testing.T) {
	var messages *Messages[MyMessage]
	require.NotPanics(t, func() { messages.Send(1) })
}
