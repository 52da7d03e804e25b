package main

import (
	"bytes"
	"fmt"
	"log"
	"log/slog"

	"github.com/hupe1980/metastore"
	"github.com/hupe1980/metastore/index"
	"github.com/hupe1980/metastore/snapshot"
)

func main() {
	// Attach typed metadata to a couple of scene nodes.
	root := metastore.New(3)
	metastore.Set(root, 0, "name", "rootnode")
	metastore.Set(root, 1, "visible", true)
	metastore.Set(root, 2, "position", metastore.Vector3{X: 0, Y: 0, Z: 0})

	child := metastore.New(3)
	metastore.Set(child, 0, "name", "child")
	metastore.Set(child, 1, "visible", true)
	metastore.Set(child, 2, "lod", uint64(2))

	fmt.Println("--- Typed access ---")
	var name string
	if metastore.Find(root, "name", &name) {
		fmt.Println("name:", name)
	}
	var wrong int32
	fmt.Println("name as int32:", metastore.Find(root, "name", &wrong))

	fmt.Println("--- Filtering ---")
	ix := index.New()
	ix.Add(1, root)
	ix.Add(2, child)

	visible := metastore.NewFilterSet(
		metastore.Filter{Key: "visible", Operator: metastore.OpEqual, Value: metastore.Bool(true)},
	)
	if bm, ok := ix.Compile(visible); ok {
		fmt.Println("visible nodes:", bm.Cardinality())
	}

	fmt.Println("--- Snapshot ---")
	stores := metastore.StoreMap{1: root, 2: child}

	var buf bytes.Buffer
	err := snapshot.Write(&buf, stores,
		snapshot.WithCompression(snapshot.CompressionZSTD),
		snapshot.WithLogger(metastore.NewTextLogger(slog.LevelInfo)),
	)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("snapshot bytes:", buf.Len())

	restored, err := snapshot.Read(&buf)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("restored stores:", len(restored))
}
