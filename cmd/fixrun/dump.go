package main

import "io"
import "os"
import "fmt"

import "github.com/ugorji/go/codec"

const dumpVersion = 1

// Msgpack snapshot written by -dump.
type Snapshot struct {
	Version int     `codec:"version"`
	Script  string  `codec:"script"`
	Entries []Entry `codec:"entries"`
}

// Strings decode as string, not []byte, when read into interface{} values.
var msgpackHandle = func() *codec.MsgpackHandle {
	handle := &codec.MsgpackHandle{}
	handle.RawToString = true
	return handle
}()

func encodeSnapshot(w io.Writer, snapshot Snapshot) error {
	return codec.NewEncoder(w, msgpackHandle).Encode(snapshot)
}

func decodeSnapshot(r io.Reader) (Snapshot, error) {
	var snapshot Snapshot
	err := codec.NewDecoder(r, msgpackHandle).Decode(&snapshot)
	if err != nil { return snapshot, err }
	if snapshot.Version != dumpVersion {
		return snapshot, fmt.Errorf("unsupported snapshot version %d", snapshot.Version)
	}
	return snapshot, nil
}

func writeDumpFile(path, script string, entries []Entry) error {
	file, err := os.Create(path)
	if err != nil { return err }
	snapshot := Snapshot{ Version: dumpVersion, Script: script, Entries: entries }
	err = encodeSnapshot(file, snapshot)
	closeErr := file.Close()
	if err != nil { return fmt.Errorf("writing dump: %w", err) }
	return closeErr
}
