package purefn

// Trie maps argument tuples to values, one level per argument position.
// Tuples of different length never collide and the empty tuple lives at the root.
//
// Trie is not safe for concurrent use. Every key element must be hashable;
// a non-comparable element makes the underlying map panic.
type Trie[O any] struct {
	root *trieNode[O]
	size int
}

type trieNode[O any] struct {
	children map[any]*trieNode[O]
	value    O
	stored   bool
}

func NewTrie[O any]() *Trie[O] {
	return &Trie[O]{root: &trieNode[O]{}}
}

func (t *Trie[O]) Load(keys []any) (O, bool) {
	node := t.root
	for _, k := range keys {
		next, ok := node.children[k]
		if !ok {
			var zero O
			return zero, false
		}
		node = next
	}
	return node.value, node.stored
}

func (t *Trie[O]) Store(keys []any, value O) {
	node := t.root
	for _, k := range keys {
		if node.children == nil {
			node.children = make(map[any]*trieNode[O])
		}
		next, ok := node.children[k]
		if !ok {
			next = &trieNode[O]{}
			node.children[k] = next
		}
		node = next
	}
	if !node.stored {
		t.size++
	}
	node.value = value
	node.stored = true
}

// Delete removes the value stored under keys and prunes branches left empty.
func (t *Trie[O]) Delete(keys []any) bool {
	path := make([]*trieNode[O], 0, len(keys)+1)
	node := t.root
	path = append(path, node)
	for _, k := range keys {
		next, ok := node.children[k]
		if !ok {
			return false
		}
		node = next
		path = append(path, node)
	}
	if !node.stored {
		return false
	}
	var zero O
	node.value = zero
	node.stored = false
	t.size--

	for i := len(keys); i > 0; i-- {
		n := path[i]
		if n.stored || len(n.children) > 0 {
			break
		}
		delete(path[i-1].children, keys[i-1])
	}
	return true
}

func (t *Trie[O]) Len() int {
	return t.size
}

func (t *Trie[O]) Clear() {
	t.root = &trieNode[O]{}
	t.size = 0
}
