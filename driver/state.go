package main

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/Fantom-foundation/Hera/hera"
	"github.com/Fantom-foundation/Hera/interpreter/hvm"
	"github.com/Fantom-foundation/Hera/st"
	"github.com/ethereum/go-ethereum/common"
)

// frameSerializable is a serializable representation of an execution frame.
// It can be used to set up a frame from a json file and to export the frame
// resulting from an execution.
type frameSerializable struct {
	Recipient string
	Gas       hera.Gas
	Refund    hera.Gas
	Pc        int32
	Stack     []hera.Word // bottom to top
	Storage   map[hera.Word]hera.Word
	Block     blockSerializable
}

// blockSerializable is a serializable representation of the block parameters
// an Environment is built from. If no block hashes are listed, the ancestor
// hashes are derived from the block number.
type blockSerializable struct {
	Number      uint64
	Timestamp   uint64
	Difficulty  hera.Word
	GasLimit    uint64
	Coinbase    string
	BlockHashes []string
}

// importFrameJSON reads a frame description from the given json file. If the
// file does not exist, or is not parsable, the import fails.
func importFrameJSON(filePath string) (*frameSerializable, error) {
	serialized, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	state := &frameSerializable{}
	decoder := json.NewDecoder(bytes.NewReader(serialized))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(state); err != nil {
		return nil, err
	}
	return state, nil
}

// deserialize converts the frameSerializable into a live frame together with
// the storage backing it.
func (s *frameSerializable) deserialize() (*hvm.Frame, *st.Storage, error) {
	recipient := hera.Address(common.HexToAddress(s.Recipient))

	hashes := make([]hera.Hash, 0, len(s.Block.BlockHashes))
	for _, hash := range s.Block.BlockHashes {
		hashes = append(hashes, hera.Hash(common.HexToHash(hash)))
	}
	if len(hashes) == 0 {
		hashes = st.AncestorHashes(s.Block.Number, hera.AncestorHashWindow)
	}
	env := hera.NewEnvironment(hera.BlockParameters{
		BlockNumber: s.Block.Number,
		Timestamp:   s.Block.Timestamp,
		Difficulty:  s.Block.Difficulty,
		GasLimit:    s.Block.GasLimit,
		Coinbase:    hera.Address(common.HexToAddress(s.Block.Coinbase)),
		BlockHashes: hashes,
	})

	storage := st.NewStorage()
	for key, value := range s.Storage {
		storage.SetStorage(recipient, hera.Key(key.Bytes32be()), value)
	}

	frame := hvm.NewFrame(hvm.FrameParameters{
		Recipient:   recipient,
		Gas:         s.Gas,
		Environment: env,
		Storage:     storage,
	})
	for _, value := range s.Stack {
		if err := frame.Stack().Push(value); err != nil {
			return nil, nil, err
		}
	}
	return frame, storage, nil
}

// update refreshes the mutable parts of the serializable state from the given
// frame and storage, leaving the block parameters as imported.
func (s *frameSerializable) update(frame *hvm.Frame, storage *st.Storage) {
	recipient := hera.Address(common.HexToAddress(s.Recipient))

	s.Gas = frame.GasLeft()
	s.Refund = frame.Refund()
	s.Pc = frame.PC()

	stack := make([]hera.Word, frame.Stack().Size())
	for i := range stack {
		stack[len(stack)-1-i] = frame.Stack().Get(i)
	}
	s.Stack = stack

	s.Storage = map[hera.Word]hera.Word{}
	for key, value := range storage.Entries(recipient) {
		s.Storage[hera.NewWordFromBytes(key[:]...)] = value
	}
}

// serialize renders the state as indented json.
func (s *frameSerializable) serialize() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}
