package suite

import (
	"fmt"

	"github.com/jumppad-labs/ofxsupport/types"
)

// SendMessage formats and posts a message through the message suite,
// handle is an effect instance handle or nil
func (t *Tables) SendMessage(handle interface{}, messageType, id, format string, args ...interface{}) types.Status {
	if t == nil || t.Message == nil {
		return types.StatFailed
	}

	return t.Message.Message(handle, messageType, id, fmt.Sprintf(format, args...))
}
