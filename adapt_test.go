/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package adapt_test

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/go-logr/logr/testr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"dirpx.dev/adapt"
	"dirpx.dev/adapt/apis"
	"dirpx.dev/adapt/apis/mocks"
	"dirpx.dev/adapt/builder"
	"dirpx.dev/adapt/config"
	"dirpx.dev/adapt/keyprovider"
	"dirpx.dev/adapt/registry"
	"dirpx.dev/adapt/strategy"
)

// Item is the common item type of the controllers under test.
type Item interface{ isItem() }

type itemA struct{ ID int }
type itemB struct{ ID int }

func (*itemA) isItem() {}
func (*itemB) isItem() {}

// notAnItem does not implement Item.
type notAnItem struct{}

const (
	keyA = 100
	keyB = 200
)

// fixedKeys assigns keyA and keyB to *itemA and *itemB.
var fixedKeys = keyprovider.Func(func(t reflect.Type) int {
	switch t {
	case reflect.TypeFor[*itemA]():
		return keyA
	case reflect.TypeFor[*itemB]():
		return keyB
	}
	return 1
})

type fixture struct {
	a  *adapt.Adapt[Item]
	eA *mocks.MockEntry
	eB *mocks.MockEntry
}

func newFixture(t *testing.T, opts ...adapt.Option) fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := fixture{eA: mocks.NewMockEntry(ctrl), eB: mocks.NewMockEntry(ctrl)}

	b := builder.New(config.NewConfig(config.WithKeyProvider(fixedKeys)))
	require.True(t, builder.AppendFor[*itemA](b, f.eA))
	require.True(t, builder.AppendFor[*itemB](b, f.eB))
	reg, err := b.Build()
	require.NoError(t, err)

	opts = append([]adapt.Option{adapt.WithLogger(testr.NewWithOptions(t, testr.Options{Verbosity: 1}))}, opts...)
	f.a, err = adapt.New[Item](reg, opts...)
	require.NoError(t, err)
	return f
}

func TestAdapter_SameInstanceBetweenCalls(t *testing.T) {
	f := newFixture(t)

	ad := f.a.Adapter()
	require.NotNil(t, ad)
	for i := 0; i < 3; i++ {
		assert.Same(t, ad, f.a.Adapter())
	}
}

func TestSetItems_StrategyObservesOldAndNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	upd := mocks.NewMockUpdateStrategy[Item](ctrl)
	f := newFixture(t, adapt.WithUpdateStrategy[Item](upd))

	first := []Item{&itemA{ID: 1}}
	second := []Item{&itemA{ID: 2}, &itemB{ID: 3}}

	var seen [][2][]Item
	commit := func(src apis.Source[Item], oldItems, newItems []Item) {
		seen = append(seen, [2][]Item{oldItems, newItems})
		src.UpdateItems(newItems)
	}
	gomock.InOrder(
		upd.EXPECT().UpdateItems(f.a, gomock.Nil(), first).Do(commit),
		upd.EXPECT().UpdateItems(f.a, first, second).Do(commit),
	)

	f.a.SetItems(first)
	f.a.SetItems(second)

	require.Len(t, seen, 2)
	assert.Nil(t, seen[0][0])
	assert.True(t, sameSlice(first, seen[0][1]))
	assert.True(t, sameSlice(first, seen[1][0]))
	assert.True(t, sameSlice(second, seen[1][1]))

	assert.Equal(t, 2, f.a.ItemCount())
	assert.Same(t, second[1], f.a.Item(1))
}

func TestSetItems_AbsentPassedThroughToStrategy(t *testing.T) {
	var got [][]Item
	f := newFixture(t, adapt.WithUpdateStrategy[Item](strategy.Func[Item](
		func(src apis.Source[Item], _, newItems []Item) {
			got = append(got, newItems)
			src.UpdateItems(newItems)
		})))

	f.a.SetItems(nil)
	f.a.SetItems([]Item{})

	require.Len(t, got, 2)
	assert.Nil(t, got[0])
	assert.NotNil(t, got[1])
}

func TestSetItems_WithoutCommitKeepsList(t *testing.T) {
	calls := 0
	f := newFixture(t, adapt.WithUpdateStrategy[Item](strategy.Func[Item](
		func(apis.Source[Item], []Item, []Item) { calls++ })))

	f.a.SetItems([]Item{&itemA{}})

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, f.a.ItemCount())
	assert.True(t, f.a.IsEmpty())
}

func TestEmpty_AllWays(t *testing.T) {
	f := newFixture(t)

	check := func(step string) {
		assert.Equal(t, 0, f.a.ItemCount(), step)
		assert.True(t, f.a.IsEmpty(), step)
		assert.True(t, f.a.Items().IsEmpty(), step)
		assert.NotNil(t, f.a.Items().Slice(), step)
		assert.Equal(t, 0, f.a.Adapter().Count(), step)
	}

	check("never set")
	f.a.SetItems(nil)
	check("nil")
	f.a.SetItems([]Item{})
	check("empty")
	f.a.SetItems(make([]Item, 0, 8))
	check("empty with capacity")
}

func TestItems_ReadOnlyView(t *testing.T) {
	f := newFixture(t)
	items := []Item{&itemA{ID: 1}, &itemB{ID: 2}}
	f.a.SetItems(items)

	view := f.a.Items()
	cp := view.Slice()
	cp[0] = &itemB{ID: 9}
	cp = append(cp, &itemA{ID: 10})

	assert.Equal(t, 2, f.a.ItemCount())
	assert.Same(t, items[0], f.a.Item(0))
	assert.Same(t, items[0], view.At(0))
}

func TestItem_Correct(t *testing.T) {
	f := newFixture(t)

	items := make([]Item, 10)
	for i := range items {
		items[i] = &itemB{ID: i}
	}
	f.a.SetItems(items)

	for i := range items {
		assert.Equal(t, i, f.a.Item(i).(*itemB).ID)
	}
	assert.Panics(t, func() { f.a.Item(10) })
}

func TestAssignedViewType(t *testing.T) {
	f := newFixture(t)

	vt, err := f.a.AssignedViewType(reflect.TypeFor[*itemA]())
	require.NoError(t, err)
	assert.Equal(t, keyA, vt)

	_, err = f.a.AssignedViewType(reflect.TypeFor[itemA]())
	assert.ErrorIs(t, err, registry.ErrUnregisteredType)
}

func TestAdapter_DelegatesToEntries(t *testing.T) {
	f := newFixture(t)
	target := &itemA{ID: 3}
	f.a.SetItems([]Item{&itemB{}, &itemB{}, &itemA{}, target, &itemB{}})

	ad := f.a.Adapter()
	ctx := struct{ name string }{"container"}
	holder := &struct{ text string }{}

	vt, err := ad.ViewTypeAt(3)
	require.NoError(t, err)
	assert.Equal(t, keyA, vt)

	vt, err = ad.ViewTypeAt(4)
	require.NoError(t, err)
	assert.Equal(t, keyB, vt)

	f.eA.EXPECT().CreateHolder(ctx).Return(holder, nil)
	h, err := ad.CreateHolder(keyA, ctx)
	require.NoError(t, err)
	assert.Same(t, holder, h)

	f.eA.EXPECT().BindHolder(holder, target).DoAndReturn(func(h apis.Holder, item any) error {
		assert.Same(t, target, item)
		return nil
	})
	require.NoError(t, ad.Bind(holder, 3))
}

func TestAdapter_Errors(t *testing.T) {
	f := newFixture(t)
	f.a.SetItems([]Item{&itemA{}})
	ad := f.a.Adapter()

	for _, pos := range []int{-1, 1} {
		vt, err := ad.ViewTypeAt(pos)
		assert.ErrorIs(t, err, adapt.ErrPositionOutOfRange)
		assert.ErrorIs(t, err, apis.ErrLookup)
		assert.Equal(t, apis.InvalidViewType, vt)
		assert.ErrorIs(t, ad.Bind(nil, pos), adapt.ErrPositionOutOfRange)
	}

	_, err := ad.CreateHolder(12345, nil)
	assert.ErrorIs(t, err, registry.ErrUnregisteredViewType)
	assert.Contains(t, err.Error(), "12345")
}

func TestAdapter_UnregisteredItemType(t *testing.T) {
	type stray struct{ Item }
	f := newFixture(t)
	f.a.SetItems([]Item{stray{}})

	_, err := f.a.Adapter().ViewTypeAt(0)
	require.ErrorIs(t, err, registry.ErrUnregisteredType)
	assert.Contains(t, err.Error(), "adapt_test.stray")
}

func TestAdapter_Observers(t *testing.T) {
	ctrl := gomock.NewController(t)
	obs := mocks.NewMockObserver(ctrl)
	f := newFixture(t)
	ad := f.a.Adapter()

	ad.RegisterObserver(obs)
	ad.RegisterObserver(obs)

	// Default strategy: commit, then one coarse notification.
	obs.EXPECT().OnChanged().Do(func() {
		assert.Equal(t, 1, ad.Count())
	})
	f.a.SetItems([]Item{&itemA{}})

	gomock.InOrder(
		obs.EXPECT().OnItemRangeInserted(0, 2),
		obs.EXPECT().OnItemRangeRemoved(1, 1),
		obs.EXPECT().OnItemRangeChanged(0, 1),
		obs.EXPECT().OnItemMoved(0, 1),
	)
	ad.NotifyItemRangeInserted(0, 2)
	ad.NotifyItemRangeRemoved(1, 1)
	ad.NotifyItemRangeChanged(0, 1)
	ad.NotifyItemMoved(0, 1)

	ad.UnregisterObserver(obs)
	f.a.SetItems(nil)
}

func TestAdapter_ObserverMayUnregisterDuringCallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	first, second := mocks.NewMockObserver(ctrl), mocks.NewMockObserver(ctrl)
	f := newFixture(t)
	ad := f.a.Adapter()
	ad.RegisterObserver(first)
	ad.RegisterObserver(second)

	first.EXPECT().OnChanged().Do(func() { ad.UnregisterObserver(first) })
	second.EXPECT().OnChanged().Times(2)

	ad.NotifyDataSetChanged()
	ad.NotifyDataSetChanged()
}

func TestDiffStrategy_EndToEnd(t *testing.T) {
	ctrl := gomock.NewController(t)
	obs := mocks.NewMockObserver(ctrl)
	byID := strategy.DiffFuncs[Item]{KeyFunc: func(it Item) string {
		return fmt.Sprintf("%T/%v", it, it)
	}}
	f := newFixture(t, adapt.WithUpdateStrategy(strategy.Diff[Item](byID)))
	f.a.Adapter().RegisterObserver(obs)

	obs.EXPECT().OnItemRangeInserted(0, 2)
	f.a.SetItems([]Item{&itemA{ID: 1}, &itemB{ID: 2}})

	obs.EXPECT().OnItemRangeRemoved(0, 1)
	f.a.SetItems([]Item{&itemB{ID: 2}})

	assert.Equal(t, 1, f.a.ItemCount())
}

func TestNew_Errors(t *testing.T) {
	a, err := adapt.New[Item](nil)
	assert.ErrorIs(t, err, adapt.ErrNilRegistry)
	assert.Nil(t, a)

	f := newFixture(t)
	_, err = adapt.New[Item](f.a.Registry(), adapt.WithUpdateStrategy(strategy.NotifyChanged[string]()))
	assert.ErrorIs(t, err, adapt.ErrStrategyType)
	assert.ErrorIs(t, err, apis.ErrConfiguration)
}

func TestBuilder(t *testing.T) {
	ctrl := gomock.NewController(t)
	eA := mocks.NewMockEntry(ctrl)

	a, err := adapt.NewBuilder[Item](config.DefaultConfig()).
		Include(reflect.TypeFor[*itemA](), eA).
		Include(reflect.TypeFor[*itemA](), mocks.NewMockEntry(ctrl)).
		With(adapt.WithUpdateStrategy(strategy.NotifyChanged[Item]())).
		Build()
	require.NoError(t, err)

	e, err := a.Registry().Entry(&itemA{})
	require.NoError(t, err)
	assert.Same(t, eA, e)
	assert.Equal(t, 1, a.Registry().Count())
}

func TestBuilder_Errors(t *testing.T) {
	_, err := adapt.NewBuilder[Item](config.DefaultConfig()).Build()
	assert.ErrorIs(t, err, registry.ErrNoEntries)

	_, err = adapt.NewBuilder[Item](config.DefaultConfig()).
		Include(reflect.TypeFor[notAnItem](), mocks.NewMockEntry(gomock.NewController(t))).
		Build()
	assert.ErrorIs(t, err, adapt.ErrNotAssignable)
	assert.ErrorIs(t, err, registry.ErrNoEntries)
	assert.Contains(t, err.Error(), "adapt_test.notAnItem")
}

// sameSlice reports whether a and b share their backing array and length.
func sameSlice(a, b []Item) bool {
	if len(a) != len(b) {
		return false
	}
	return len(a) == 0 || &a[0] == &b[0]
}
