package gorolling

import (
	"github.com/golang-collections/collections/stack"
)

// PriorityMode selects which end of the list Peek reads
type PriorityMode int8

const (
	MIN PriorityMode = 0
	MAX PriorityMode = 1
)

// NeverDies marks an entry that Expire never removes
const NeverDies = -1

// DefaultExpireBatchLimit caps how many entries a single Expire call may
// remove. The right value is workload dependent, override it per list
// with SetExpireBatchLimit.
const DefaultExpireBatchLimit = 5

type priorityNode struct {
	val     float64
	death   int
	smaller *priorityNode
	larger  *priorityNode
}

// PriorityList is a doubly-linked list ordered from the smallest value to
// the largest, so the head is the running min and the tail is the running
// max in O(1) after every insert. Each entry carries a death label that
// indexes a caller owned threshold table; Expire walks the chain and
// removes entries whose threshold has been passed. A single driver owns
// the list, there is no internal locking.
type PriorityList struct {
	mode             PriorityMode
	head             *priorityNode
	tail             *priorityNode
	size             int
	capacity         int
	expireBatchLimit int
	free             *stack.Stack
}

// creates an empty PriorityList. [capacityHint] pre-seeds the node free
// stack, it is not an enforced bound on the length
func NewPriorityList(capacityHint int, mode PriorityMode) *PriorityList {
	free := stack.New()
	for i := 0; i < capacityHint; i++ {
		free.Push(&priorityNode{})
	}

	return &PriorityList{
		mode:             mode,
		capacity:         capacityHint,
		expireBatchLimit: DefaultExpireBatchLimit,
		free:             free,
	}
}

// overrides how many entries one Expire call may remove
func (v *PriorityList) SetExpireBatchLimit(limit int) {
	if limit < 1 {
		limit = 1
	}
	v.expireBatchLimit = limit
}

// Insert adds a new entry, keeping the chain ordered. O(1) when the value
// lands at either end, O(k) otherwise where k is the number of strictly
// smaller entries scanned from head. Among equal values the newest entry
// ends up closest to head.
func (v *PriorityList) Insert(value float64, death int) {
	node := v.newNode(value, death)
	v.size++

	// first node
	if v.tail == nil {
		v.head = node
		v.tail = node
		return
	}

	// new smallest node
	if value < v.head.val {
		node.larger = v.head
		v.head.smaller = node
		v.head = node
		return
	}

	// new largest node
	if value > v.tail.val {
		node.smaller = v.tail
		v.tail.larger = node
		v.tail = node
		return
	}

	// scan from head for the first entry that is not smaller and slot in
	// right before it
	n := v.head
	for n.val < value {
		n = n.larger
	}

	node.larger = n
	node.smaller = n.smaller
	n.smaller = node
	if node.smaller != nil {
		node.smaller.larger = node
	}
	if v.head == n {
		v.head = node
	}
}

// Peek returns the max for a MAX list and the min for a MIN list. The
// second return is false when the list is empty. O(1), no mutation.
func (v *PriorityList) Peek() (float64, bool) {
	var n *priorityNode
	if v.mode == MAX {
		n = v.tail
	} else {
		n = v.head
	}

	if n == nil {
		return 0, false
	}
	return n.val, true
}

// Expire walks from head towards tail removing every entry whose death
// label points at a threshold [current] has reached. The walk stops once
// the batch limit many entries were removed in this call; whatever it
// leaves behind stays expired and is picked up by the next call. Returns
// the number of entries removed.
//
// [thresholds] must have an entry for every death label in the list.
func (v *PriorityList) Expire(thresholds []int, current int) int {
	count := 0
	n := v.head
	for n != nil {
		if n.death != NeverDies && thresholds[n.death] <= current {
			larger := n.larger
			smaller := n.smaller

			if larger != nil {
				larger.smaller = smaller
			}
			if smaller != nil {
				smaller.larger = larger
			}

			if v.head == n {
				v.head = larger
			}
			if v.tail == n {
				v.tail = smaller
			}

			v.size--
			v.recycle(n)
			count++
			n = larger

			if count >= v.expireBatchLimit {
				break
			}
		} else {
			n = n.larger
		}
	}
	return count
}

// Clear drops every entry and resets the list to empty. No ordering work
// is done, nodes are recycled in walk order.
func (v *PriorityList) Clear() {
	n := v.head
	for n != nil {
		next := n.larger
		v.recycle(n)
		n = next
	}

	v.head = nil
	v.tail = nil
	v.size = 0
}

// returns the number of live entries
func (v *PriorityList) GetSize() int {
	return v.size
}

// returns the capacity hint the list was created with
func (v *PriorityList) GetCapacity() int {
	return v.capacity
}

// returns whether the list peeks at the max or the min end
func (v *PriorityList) GetMode() PriorityMode {
	return v.mode
}

func (v *PriorityList) newNode(value float64, death int) *priorityNode {
	if n, ok := v.free.Pop().(*priorityNode); ok {
		n.val = value
		n.death = death
		n.smaller = nil
		n.larger = nil
		return n
	}
	return &priorityNode{val: value, death: death}
}

func (v *PriorityList) recycle(n *priorityNode) {
	n.smaller = nil
	n.larger = nil
	v.free.Push(n)
}

// PriorityEntry is one live observation as seen by iterators and snapshots
type PriorityEntry struct {
	Value float64 `msgpack:"value"`
	Death int     `msgpack:"death"`
}

// returns a head to tail iterator over the live entries
func (v *PriorityList) GetIterator() IteratorBase[PriorityEntry] {
	return &PriorityListIterator{next: v.head}
}

// Iterator for a PriorityList, walks the chain smallest to largest
type PriorityListIterator struct {
	current *priorityNode
	next    *priorityNode
}

// move next for PriorityListIterator
func (i *PriorityListIterator) MoveNext() bool {
	if i.next == nil {
		return false
	}

	i.current = i.next
	i.next = i.next.larger
	return true
}

// get current for PriorityListIterator
func (i *PriorityListIterator) GetCurrent() PriorityEntry {
	if i.current == nil {
		panic("Iterator: No more items left or the first MoveNext() is called")
	}

	return PriorityEntry{Value: i.current.val, Death: i.current.death}
}
