// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"os"
	"sort"
	"strings"
	"testing"

	"github.com/bitmark-inc/avltree/avl"
)

type stringItem struct {
	s    string
	data string
}

func stringKey(item *stringItem) string {
	return item.s
}

func newStringTree() *avl.Tree[stringItem, string] {
	return avl.New(stringKey, strings.Compare)
}

func newStringNode(s string) *avl.Node[stringItem] {
	return avl.NewNode(stringItem{s: s, data: "data:" + s})
}

// fail with a picture of the tree if it is not consistent
func checkTree(t *testing.T, tree *avl.Tree[stringItem, string], title string) {
	t.Helper()
	balanced, sorted := tree.Validate()
	if !balanced || !sorted {
		depth := tree.Print(os.Stdout, true)
		t.Logf("depth: %d", depth)
		t.Fatalf("%s: inconsistent tree: balanced: %t  sorted: %t", title, balanced, sorted)
	}
}

func TestListShort(t *testing.T) {
	addList := []string{
		"4201", "1254", "8608", "1639", "8950",
		"6740",
	}
	doList(t, addList)
	doApply(t, addList)
}

// to make sure that lots of duplicates do not increment the node
// count incorrectly
func TestListDuplicates(t *testing.T) {
	addList := []string{
		"1720", "0506", "8382", "6774", "1247",
		"1250", "1264", "1258", "1255", "2247",
		"2004", "2194", "2644", "2169", "8133",
		"2136", "9651", "4079", "1042", "3579",
		"3630", "1427", "5843", "9549", "5433",
		"1274", "9034", "4724", "6179", "5072",
		"9272", "4030", "4205", "3363", "8582",
		"1720", "0506", "8382", "6774", "1042",

		"1042", "1042", "1042", "1042", "1042",
		"1042", "1042", "1042", "1042", "1042",
		"1042", "1042", "1042", "1042", "1042",
	}
	doList(t, addList)
	doApply(t, addList)
}

func TestListLong(t *testing.T) {
	addList := []string{
		"8133", "2136", "9651", "4079", "1042",
		"3579", "3630", "1427", "5843", "9549",
		"5433", "1274", "9034", "4724", "6179",
		"5072", "9272", "4030", "4205", "3363",
		"8582", "1720", "0506", "8382", "6774",
		"3088", "2329", "9039", "6703", "1027",
		"7297", "6063", "4156", "1005", "0982",
		"3065", "2553", "0795", "8426", "2377",
		"0877", "9085", "5918", "2581", "7797",
		"3028", "5880", "3061", "5212", "6539",
		"1320", "3581", "3334", "4348", "2934",
		"8342", "8814", "8736", "1353", "3082",
		"9620", "0056", "5063", "1245", "7066",
		"7435", "2999", "7803", "1303", "1697",
		"0017", "4314", "9926", "7587", "2531",
		"8123", "5693", "7495", "9975", "5465",
		"4342", "7958", "7138", "9382", "0672",
		"5402", "0204", "2397", "2712", "0938",
		"9610", "3611", "2140", "4289", "9271",
		"4786", "4145", "1066", "4366", "6716",
		"8579", "1012", "5935", "8278", "5761",
		"1871", "6257", "2649", "8643", "1239",
		"3416", "6146", "7127", "9517", "5788",
		"9025", "6880", "9064", "4849", "4503",
		"4898", "6815", "8811", "6745", "6907",
		"7503", "9869", "5491", "9940", "5955",
		"3764", "3254", "8048", "5339", "2406",
		"3137", "0251", "0486", "4202", "1844",
		"1741", "7154", "4286", "5160", "9472",
		"2998", "1935", "4758", "6478", "9572",
		"9254", "6848", "3126", "1848", "7692",
		"2791", "1504", "3469", "9701", "5077",
	}
	doList(t, addList)
	doApply(t, addList)
}

// insert the whole list, then delete all items in two stages,
// splitting at every possible position
func doList(t *testing.T, addList []string) {

	for i := 0; i < len(addList)+1; i += 1 {

		alreadyDeleted := make(map[string]struct{})

		tree := newStringTree()
		for _, key := range addList {
			tree.Add(newStringNode(key))
		}
		checkTree(t, tree, "add")

	delete_items:
		for _, key := range addList[:i] {
			if _, ok := alreadyDeleted[key]; ok {
				continue delete_items
			}
			alreadyDeleted[key] = struct{}{}
			node := tree.Remove(key)
			if nil == node {
				t.Fatalf("delete: %q returned nil", key)
			}
			ev := "data:" + key
			if node.Datum().data != ev {
				t.Fatalf("delete returned: %q  expected: %q", node.Datum().data, ev)
			}
		}
		checkTree(t, tree, "delete")

	delete_remainder:
		for _, key := range addList[i:] {
			if _, ok := alreadyDeleted[key]; ok {
				continue delete_remainder
			}
			alreadyDeleted[key] = struct{}{}
			node := tree.Remove(key)
			if nil == node {
				t.Fatalf("delete: %q returned nil", key)
			}
		}
		if !tree.IsEmpty() {
			depth := tree.Print(os.Stdout, true)
			t.Logf("depth: %d", depth)
			t.Fatal("remaining nodes")
		}
		if 0 != tree.Count() {
			t.Fatalf("remaining count not zero: %d", tree.Count())
		}
	}
}

// visit every node and check order and count
func doApply(t *testing.T, addList []string) {

	unique := make(map[string]struct{})
	tree := newStringTree()
	for _, key := range addList {
		unique[key] = struct{}{}
		tree.Add(newStringNode(key))
	}

	expected := make([]string, 0, len(unique))
	for key := range unique {
		expected = append(expected, key)
	}
	sort.Strings(expected)

	if len(expected) != tree.Count() {
		t.Fatalf("expected: %d items, but tree count: %d", len(expected), tree.Count())
	}

	actual := make([]string, 0, len(expected))
	tree.Apply(func(node *avl.Node[stringItem]) {
		actual = append(actual, node.Datum().s)
	})

	if len(actual) != len(expected) {
		t.Fatalf("visit count: actual: %d  expected: %d", len(actual), len(expected))
	}
	for i, key := range expected {
		if actual[i] != key {
			t.Fatalf("[%d]: expected: %q but found: %q", i, key, actual[i])
		}
	}

	if first := tree.FindLowest(); nil == first || first.Datum().s != expected[0] {
		t.Fatalf("lowest: %v  expected: %q", first, expected[0])
	}
	if last := tree.FindHighest(); nil == last || last.Datum().s != expected[len(expected)-1] {
		t.Fatalf("highest: %v  expected: %q", last, expected[len(expected)-1])
	}
}

func makeKey() string {

	b := make([]byte, 4)
	_, err := rand.Read(b)
	if nil != err {
		panic("rand failed")
	}
	n := int(binary.BigEndian.Uint32(b))
	return fmt.Sprintf("%04d", n%10000)
}

func TestRandomTree(t *testing.T) {

	randomTree(t, 2200, 2000)
	randomTree(t, 3400, 2760)
	randomTree(t, 5467, 1234)

	for i := 0; i < 5; i += 1 {
		randomTree(t, 2100, 2000)
	}
}

func randomTree(t *testing.T, total int, toDelete int) {

	if toDelete > total {
		t.Fatalf("failed: total: %d  < deletions: %d", total, toDelete)
	}

	tree := newStringTree()
	d := make([]string, toDelete)
	present := make(map[string]struct{})

	for i := 0; i < total; i += 1 {
		key := makeKey()
		if i < len(d) {
			d[i] = key
		}
		tree.Add(newStringNode(key))
		present[key] = struct{}{}
	}
	checkTree(t, tree, "add")

	if len(present) != tree.Count() {
		t.Fatalf("count: actual: %d  expected: %d", tree.Count(), len(present))
	}

	for _, key := range d {
		_, ok := present[key]
		node := tree.Remove(key)
		if ok != (nil != node) {
			t.Fatalf("delete: %q  present: %t  removed: %v", key, ok, node)
		}
		delete(present, key)
		checkTree(t, tree, "delete")
	}

	if len(present) != tree.Count() {
		t.Fatalf("count: actual: %d  expected: %d", tree.Count(), len(present))
	}

	// add back the test value
	const testKey = "500"
	const testValue = "just testing data: test 500 value"
	tv := avl.NewNode(stringItem{s: testKey, data: testValue})
	if tree.Add(tv) != tv {
		t.Fatalf("test key: %q was not added", testKey)
	}
	checkTree(t, tree, "add test key")

	// check that test value is searchable
	found := tree.Find(testKey)
	if found != tv {
		t.Fatalf("could not find test key: %q", testKey)
	}
	if testValue != found.Datum().data {
		t.Fatalf("test value mismatch: actual: %q  expected: %q", found.Datum().data, testValue)
	}

	// delete the test value, and check it return the correct
	// value and is no longer in the tree
	removed := tree.Remove(testKey)
	if removed != tv {
		t.Fatalf("delete node mismatch: actual: %p  expected: %p", removed, tv)
	}
	if nil != tree.Find(testKey) {
		t.Fatalf("test key not deleted")
	}
	checkTree(t, tree, "delete test key")
}

// check that duplicate adds leave the original node in place
// and that nodes keep their data when tree is re-balanced
func TestDuplicateAndNodeStability(t *testing.T) {
	addList := []string{
		"01", "02", "03", "04", "05",
		"06", "07", "08", "09", "10",
	}

	tree := newStringTree()
	nodes := make(map[string]*avl.Node[stringItem])
	for _, key := range addList {
		n := newStringNode(key)
		nodes[key] = n
		tree.Add(n)
	}
	checkTree(t, tree, "add")

	// offer a duplicate key
	dup := avl.NewNode(stringItem{s: "05", data: "new content for 05"})
	if existing := tree.Add(dup); existing != nodes["05"] {
		t.Fatalf("duplicate add returned: %p  expected: %p", existing, nodes["05"])
	}
	if len(addList) != tree.Count() {
		t.Fatalf("count changed to: %d", tree.Count())
	}
	if "data:05" != tree.Find("05").Datum().data {
		t.Fatalf("data overwritten: %q", tree.Find("05").Datum().data)
	}
	checkTree(t, tree, "duplicate")

	// delete nodes so the others are rotated
	for _, key := range []string{"04", "06", "01"} {
		if tree.Remove(key) != nodes[key] {
			t.Fatalf("delete: %q returned wrong node", key)
		}
		delete(nodes, key)
		checkTree(t, tree, "delete")
	}

	// ensure no data moved between nodes
	for key, n := range nodes {
		if tree.Find(key) != n {
			t.Fatalf("node for: %q moved", key)
		}
		if "data:"+key != n.Datum().data {
			t.Fatalf("node for: %q holds: %q", key, n.Datum().data)
		}
	}
}

// ascending keys force a rotation at almost every insert
func TestSequentialKeys(t *testing.T) {
	tree := avl.New(func(d *int) int { return *d }, compareInt)

	const total = 1 << 16
	for i := 0; i < total; i += 1 {
		tree.Add(avl.NewNode(i))
	}
	for i := 0; i < total; i += 2 {
		if nil == tree.Remove(i) {
			t.Fatalf("delete: %d returned nil", i)
		}
	}
	balanced, sorted := tree.Validate()
	if !balanced || !sorted {
		t.Fatalf("inconsistent tree: balanced: %t  sorted: %t", balanced, sorted)
	}
	if total/2 != tree.Count() {
		t.Fatalf("count: actual: %d  expected: %d", tree.Count(), total/2)
	}
}
