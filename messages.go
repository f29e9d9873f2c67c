package arena

type MessageId int

type MessageWithId[M any] struct {
	Id      MessageId
	Message M
}

// Messages is a double buffered message queue. Messages sent during one frame stay
// readable during the next frame, after that they are dropped.
type Messages[M any] struct {
	prevId MessageId
	curr   []MessageWithId[M]
	prev   []MessageWithId[M]
}

// RotateMessages rotates the given message queue at the end of every frame.
func RotateMessages[M any](app *App, messages *Messages[M]) {
	app.AddSystems(Last, func(*World, *Commands, FixedTime) {
		messages.Update()
	})
}

func (e *Messages[M]) AppendTo(target []MessageWithId[M]) []MessageWithId[M] {
	target = append(target, e.prev...)
	target = append(target, e.curr...)
	return target
}

func (e *Messages[M]) Send(message M) {
	if e == nil {
		return
	}

	e.prevId += 1

	e.curr = append(e.curr, MessageWithId[M]{
		Id:      e.prevId,
		Message: message,
	})
}

func (e *Messages[M]) Update() {
	e.curr, e.prev = e.prev, e.curr

	// reuse the memory of the current buffer
	clear(e.curr)
	e.curr = e.curr[:0]
}

func (e *Messages[M]) Reader() *MessageReader[M] {
	return &MessageReader[M]{messages: e}
}

// MessageReader reads every message of a queue exactly once.
type MessageReader[M any] struct {
	messages *Messages[M]
	lastId   MessageId

	scratch       []M
	scratchWithId []MessageWithId[M]
}

// Read returns all messages that were sent since the previous call to Read.
// The returned slice is only valid until the next call.
func (r *MessageReader[M]) Read() []M {
	r.scratchWithId = r.messages.AppendTo(r.scratchWithId[:0])

	buffer := r.scratchWithId

	// skip the messages we've already read
	for len(buffer) > 0 {
		if buffer[0].Id > r.lastId {
			break
		}

		buffer = buffer[1:]
	}

	if len(buffer) > 0 {
		// store the last id we've seen
		r.lastId = buffer[len(buffer)-1].Id
	}

	messages := r.scratch[:0]
	for _, message := range buffer {
		messages = append(messages, message.Message)
	}

	// keep scratch buffer for reuse
	r.scratch = messages

	return messages
}
