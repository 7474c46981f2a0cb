// Command invidx-demo walks through building a small inverted index,
// promoting a token past its rarity threshold, running the cursor
// algebra over its postings, and persisting it to disk.
package main

import (
	"fmt"
	"log"
	"math"
	"os"
	"strings"

	"github.com/intellect4all/invidx/cursor"
	"github.com/intellect4all/invidx/invertedindex"
	"github.com/intellect4all/invidx/pageio"
	"github.com/intellect4all/invidx/row"
)

func main() {
	fmt.Println(strings.Repeat("=", 80))
	fmt.Println("Inverted Index Demo: rare/common promotion and cursor composition")
	fmt.Println(strings.Repeat("=", 80))
	fmt.Println()

	demoPromotion()
	fmt.Println()
	demoIntersection()
	fmt.Println()
	demoPersistence()
}

func demoPromotion() {
	fmt.Println("### Rare -> common promotion ###")
	fmt.Println(strings.Repeat("-", 40))

	idx := invertedindex.OpenWith[row.PairRow](
		pageio.NewMemoryPageManager[row.PairRow](),
		pageio.NewMemoryPageManager[invertedindex.TokenRow](),
		pageio.NewMemoryPageManager[invertedindex.RareRow[row.PairRow]](),
	)

	const token = 42
	fmt.Printf("Inserting %d postings under token %d...\n", invertedindex.RareThreshold+5, token)
	for doc := 0; doc < invertedindex.RareThreshold+5; doc++ {
		idx.Insert(token, row.PairRow{Doc: uint32(doc), Val: uint32(doc * 10)})
	}

	fmt.Printf("count(token) = %d\n", idx.Count(token))
	fmt.Printf("postings stored = %d\n", len(idx.All(token)))
}

func demoIntersection() {
	fmt.Println("### Intersecting two tokens' postings ###")
	fmt.Println(strings.Repeat("-", 40))

	idx := invertedindex.OpenWith[row.UInt64Row](
		pageio.NewMemoryPageManager[row.UInt64Row](),
		pageio.NewMemoryPageManager[invertedindex.TokenRow](),
		pageio.NewMemoryPageManager[invertedindex.RareRow[row.UInt64Row]](),
	)

	for _, doc := range []uint64{1, 2, 3, 4, 5, 6} {
		idx.Insert(100, row.UInt64Row{Val: doc})
	}
	for _, doc := range []uint64{2, 4, 6, 8} {
		idx.Insert(200, row.UInt64Row{Val: doc})
	}

	intersection, err := cursor.NewIntersectionIterator([]cursor.Cursor[row.UInt64Row]{
		idx.Iterator(100),
		idx.Iterator(200),
	})
	if err != nil {
		log.Fatalf("intersection: %v", err)
	}

	fmt.Print("docs in both token 100 and token 200: ")
	for v := intersection.Current(); v.Val != math.MaxUint64; v = intersection.Next() {
		fmt.Printf("%d ", v.Val)
	}
	fmt.Println()
}

func demoPersistence() {
	fmt.Println("### Persisting to disk and reopening ###")
	fmt.Println(strings.Repeat("-", 40))

	dir, err := os.MkdirTemp("", "invidx-demo-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)
	path := dir + "/demo-index"

	idx, err := invertedindex.Open[row.KeyValueRow](path)
	if err != nil {
		log.Fatal(err)
	}
	idx.Insert(7, row.NewKeyValueRow(1001, 1))
	idx.Insert(7, row.NewKeyValueRow(1002, 2))
	if err := idx.Close(); err != nil {
		log.Fatal(err)
	}

	reopened, err := invertedindex.Open[row.KeyValueRow](path)
	if err != nil {
		log.Fatal(err)
	}
	defer reopened.Close()
	fmt.Printf("reopened index: token 7 has %d postings, count=%d\n",
		len(reopened.All(7)), reopened.Count(7))
}
