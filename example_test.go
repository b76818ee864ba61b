package slist_test

import (
	"fmt"

	"github.com/kyn07c0/slist"
)

func Example() {
	// Create a new list and put some numbers in it.
	l := slist.Of(2, 4)
	l.PushFront(1)
	// Insert 3 between 2 and 4.
	l.InsertAfter(l.Begin().Next(), 3)
	// Remove the 4; BeforeBegin-relative positions address the element after.
	l.EraseAfter(l.Begin().Next().Next())

	for v := range l.All() {
		fmt.Println(v)
	}

	// Output:
	// 1
	// 2
	// 3
}

func ExampleList_InsertAfter() {
	l := slist.New[string]()
	// BeforeBegin makes inserting at the front the same operation as
	// inserting anywhere else.
	it := l.InsertAfter(l.BeforeBegin(), "world")
	l.InsertAfter(l.BeforeBegin(), "hello")
	it.Set("go")

	fmt.Println(l.ToSlice())
	// Output:
	// [hello go]
}
