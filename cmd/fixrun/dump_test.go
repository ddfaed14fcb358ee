package main

import "os"
import "bytes"
import "testing"
import "path/filepath"

import "github.com/tinne26/fixmath"
import "github.com/ugorji/go/codec"

func TestSnapshotRoundTrip(t *testing.T) {
	entries := []Entry{
		newEntry("a", fixmath.Pi), newEntry("b", fixmath.MinFixed), newEntry("c", -fixmath.Half),
	}
	path := filepath.Join(t.TempDir(), "out.msgpack")
	err := writeDumpFile(path, "script.lua", entries)
	if err != nil { t.Fatalf("unexpected error: %s", err) }

	file, err := os.Open(path)
	if err != nil { t.Fatal(err) }
	defer file.Close()
	snapshot, err := decodeSnapshot(file)
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	if snapshot.Script != "script.lua" || len(snapshot.Entries) != len(entries) {
		t.Fatalf("unexpected snapshot %+v", snapshot)
	}
	for i, entry := range snapshot.Entries {
		if entry != entries[i] || entry.Value().String() != entry.Text {
			t.Fatalf("entry #%d: expected %+v, got %+v", i, entries[i], entry)
		}
	}
}

func TestSnapshotGenericDecode(t *testing.T) {
	var buffer bytes.Buffer
	err := encodeSnapshot(&buffer, Snapshot{ Version: dumpVersion, Script: "script.lua" })
	if err != nil { t.Fatalf("unexpected error: %s", err) }

	var generic map[string]interface{}
	err = codec.NewDecoder(&buffer, msgpackHandle).Decode(&generic)
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	script, isString := generic["script"].(string)
	if !isString || script != "script.lua" {
		t.Fatalf("expected script \"script.lua\" as string, got %#v", generic["script"])
	}
}

func TestSnapshotVersion(t *testing.T) {
	var buffer bytes.Buffer
	err := encodeSnapshot(&buffer, Snapshot{ Version: 99 })
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	_, err = decodeSnapshot(&buffer)
	if err == nil { t.Fatal("expected version error") }
}
