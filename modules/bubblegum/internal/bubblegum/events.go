package bubblegum

import (
	"bytes"

	"github.com/cockroachdb/errors"
	bin "github.com/gagliardetto/binary"
)

// AccountCompressionEvent tags.
const (
	eventTagChangeLog       uint8 = 0
	eventTagApplicationData uint8 = 1

	eventVersionV1 uint8 = 0
)

// Bubblegum event tags carried inside application data.
const (
	bubblegumEventLeafSchema uint8 = 1
	bubblegumVersionV1       uint8 = 0
	leafSchemaTagV1          uint8 = 0
)

var errNotAnEvent = errors.New("not an account compression event")

// readTags consumes the enum tags that prefix an event and reports whether
// they match want.
func readTags(dec *bin.Decoder, want ...uint8) bool {
	for _, tag := range want {
		got, err := dec.ReadUint8()
		if err != nil || got != tag {
			return false
		}
	}
	return true
}

// ParseChangeLogEvent decodes noop data carrying a ChangeLog(V1) event.
// errNotAnEvent is returned for noop data of any other shape.
func ParseChangeLogEvent(data []byte) (*ChangeLogEvent, error) {
	dec := bin.NewBorshDecoder(data)
	if !readTags(dec, eventTagChangeLog, eventVersionV1) {
		return nil, errNotAnEvent
	}

	event := new(ChangeLogEvent)
	if err := dec.Decode(event); err != nil {
		return nil, parsingError(err, "can't decode change log event")
	}
	return event, nil
}

// ParseApplicationData unwraps noop data carrying ApplicationData(V1).
func ParseApplicationData(data []byte) ([]byte, error) {
	dec := bin.NewBorshDecoder(data)
	if !readTags(dec, eventTagApplicationData, eventVersionV1) {
		return nil, errNotAnEvent
	}
	payload, err := dec.ReadByteSlice()
	if err != nil {
		return nil, parsingError(err, "can't decode application data")
	}
	return bytes.Clone(payload), nil
}

// ParseLeafSchemaEvent decodes the Bubblegum payload of an application data event.
func ParseLeafSchemaEvent(data []byte) (*LeafSchemaEvent, error) {
	dec := bin.NewBorshDecoder(data)
	if !readTags(dec, bubblegumEventLeafSchema, bubblegumVersionV1, leafSchemaTagV1) {
		return nil, errNotAnEvent
	}

	event := new(LeafSchemaEvent)
	if err := dec.Decode(event); err != nil {
		return nil, parsingError(err, "can't decode leaf schema event")
	}
	return event, nil
}
