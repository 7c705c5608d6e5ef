package store

import (
	"bytes"

	"github.com/google/btree"

	"github.com/emmanuelJet/MultiSigEnterpriseVault/errors"
)

// ascendBtree materializes given range of the btree in ascending order.
// Cached writes are few per transaction, so the copy is cheap and avoids
// mutating the tree while an iterator is open.
func ascendBtree(bt *btree.BTree, start, end []byte) []keyer {
	var items []keyer
	insert := func(item btree.Item) bool {
		items = append(items, item.(keyer))
		return true
	}

	if start == nil && end == nil {
		bt.Ascend(insert)
	} else if start == nil { // end != nil
		bt.AscendLessThan(bkey{end}, insert)
	} else if end == nil { // start != nil
		bt.AscendGreaterOrEqual(bkey{start}, insert)
	} else { // both != nil
		bt.AscendRange(bkey{start}, bkey{end}, insert)
	}
	return items
}

// descendBtree materializes given range of the btree in descending order.
func descendBtree(bt *btree.BTree, start, end []byte) []keyer {
	var items []keyer
	insert := func(item btree.Item) bool {
		items = append(items, item.(keyer))
		return true
	}

	if start == nil && end == nil {
		bt.Descend(insert)
	} else if start == nil { // end != nil
		bt.DescendLessOrEqual(bkeyLess{end}, insert)
	} else if end == nil { // start != nil
		bt.DescendGreaterThan(bkeyLess{start}, insert)
	} else { // both != nil
		bt.DescendRange(bkeyLess{end}, bkeyLess{start}, insert)
	}
	return items
}

// cacheIter merges the cached (btree) items with the parent iterator,
// overlaying writes and skipping deletes.
type cacheIter struct {
	cached []keyer
	cidx   int

	parent Iterator
	// pkey/pvalue buffer the upcoming parent entry. pdone marks an
	// exhausted parent.
	pkey   []byte
	pvalue []byte
	pdone  bool
	primed bool

	reverse bool
}

var _ Iterator = (*cacheIter)(nil)

func newCacheIter(cached []keyer, parent Iterator, reverse bool) *cacheIter {
	return &cacheIter{
		cached:  cached,
		parent:  parent,
		reverse: reverse,
	}
}

// Next returns the next merged key/value pair, or ErrIteratorDone when both
// sources are exhausted.
func (i *cacheIter) Next() ([]byte, []byte, error) {
	if !i.primed {
		if err := i.advanceParent(); err != nil {
			return nil, nil, err
		}
		i.primed = true
	}

	for {
		cok := i.cidx < len(i.cached)
		pok := !i.pdone

		if !cok && !pok {
			return nil, nil, errors.ErrIteratorDone
		}

		var src int // -1 cached only, 0 both, 1 parent only
		switch {
		case !pok:
			src = -1
		case !cok:
			src = 1
		default:
			cmp := bytes.Compare(i.cached[i.cidx].Key(), i.pkey)
			if i.reverse {
				cmp = -cmp
			}
			if cmp < 0 {
				src = -1
			} else if cmp > 0 {
				src = 1
			} else {
				src = 0
			}
		}

		switch src {
		case 1:
			key, value := i.pkey, i.pvalue
			if err := i.advanceParent(); err != nil {
				return nil, nil, err
			}
			return key, value, nil
		case 0:
			// cache overlays the parent entry
			if err := i.advanceParent(); err != nil {
				return nil, nil, err
			}
			fallthrough
		case -1:
			item := i.cached[i.cidx]
			i.cidx++
			if set, ok := item.(setItem); ok {
				return set.Key(), set.value, nil
			}
			// deleted entry, keep scanning
		}
	}
}

func (i *cacheIter) advanceParent() error {
	if i.parent == nil || i.pdone {
		i.pdone = true
		return nil
	}
	key, value, err := i.parent.Next()
	switch {
	case err == nil:
		i.pkey, i.pvalue = key, value
		return nil
	case errors.ErrIteratorDone.Is(err):
		i.pdone = true
		return nil
	default:
		return err
	}
}

// Release releases both the cached items and the parent iterator.
func (i *cacheIter) Release() {
	i.cached = nil
	i.cidx = 0
	i.pdone = true
	if i.parent != nil {
		i.parent.Release()
	}
}
