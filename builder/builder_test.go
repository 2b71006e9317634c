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

package builder_test

import (
	"reflect"
	"testing"

	"github.com/go-logr/logr/testr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"dirpx.dev/adapt/apis"
	"dirpx.dev/adapt/apis/mocks"
	"dirpx.dev/adapt/builder"
	"dirpx.dev/adapt/config"
	"dirpx.dev/adapt/keyprovider"
	"dirpx.dev/adapt/registry"
)

// textItem and listItem are two unrelated item types.
type textItem struct{ S string }
type listItem struct{ N []int }

// defaultCfg returns a configuration with a verbose test logger.
func defaultCfg(t *testing.T) apis.Config {
	return config.NewConfig(config.WithLogger(testr.NewWithOptions(t, testr.Options{Verbosity: 1})))
}

func TestBuild_NothingAdded(t *testing.T) {
	b := builder.New(defaultCfg(t))

	reg, err := b.Build()
	require.ErrorIs(t, err, registry.ErrNoEntries)
	assert.ErrorIs(t, err, apis.ErrConfiguration)
	assert.Nil(t, reg)
}

func TestAppend_DuplicateKeepsFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	first, second := mocks.NewMockEntry(ctrl), mocks.NewMockEntry(ctrl)

	b := builder.New(defaultCfg(t))
	assert.True(t, b.Append(reflect.TypeOf(textItem{}), first))
	assert.False(t, b.Append(reflect.TypeOf(textItem{}), second))

	reg, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, 1, reg.Count())

	got, err := reg.Entry(textItem{S: "x"})
	require.NoError(t, err)
	assert.Same(t, first, got)
}

func TestAppend_DerivesViewTypeFromKeyProvider(t *testing.T) {
	ctrl := gomock.NewController(t)
	kp := keyprovider.Default()

	b := builder.New(defaultCfg(t))
	require.True(t, b.Append(reflect.TypeOf(textItem{}), mocks.NewMockEntry(ctrl)))
	require.True(t, builder.AppendFor[listItem](b, mocks.NewMockEntry(ctrl)))

	reg, err := b.Build()
	require.NoError(t, err)

	for _, item := range []any{textItem{}, listItem{}} {
		tt := reflect.TypeOf(item)
		byItem, err := reg.AssignedViewType(item)
		require.NoError(t, err)
		byType, err := reg.AssignedViewTypeOf(tt)
		require.NoError(t, err)

		assert.Equal(t, kp.ProvideKey(tt), byItem, "item %v", tt)
		assert.Equal(t, byItem, byType, "type %v", tt)
	}
}

func TestBuild_KeyEqualsInvalidViewType(t *testing.T) {
	cfg := config.NewConfig(config.WithKeyProvider(keyprovider.Func(func(reflect.Type) int {
		return apis.InvalidViewType
	})))
	b := builder.New(cfg)
	// Append itself succeeds: validation is deferred to Build.
	require.True(t, b.Append(reflect.TypeOf(""), mocks.NewMockEntry(gomock.NewController(t))))

	_, err := b.Build()
	require.ErrorIs(t, err, registry.ErrInvalidViewType)
	assert.ErrorIs(t, err, apis.ErrConfiguration)
	assert.Contains(t, err.Error(), "type string has view type -1")
}

func TestBuild_Collision(t *testing.T) {
	cfg := config.NewConfig(config.WithKeyProvider(keyprovider.Func(func(reflect.Type) int { return 3 })))
	ctrl := gomock.NewController(t)

	b := builder.New(cfg)
	require.True(t, b.Append(reflect.TypeOf(textItem{}), mocks.NewMockEntry(ctrl)))
	require.True(t, b.Append(reflect.TypeOf(listItem{}), mocks.NewMockEntry(ctrl)))

	_, err := b.Build()
	require.ErrorIs(t, err, registry.ErrViewTypeCollision)
}

func TestAppend_NilArgumentsReportedAtBuild(t *testing.T) {
	ctrl := gomock.NewController(t)

	b := builder.New(defaultCfg(t))
	assert.False(t, b.Append(nil, mocks.NewMockEntry(ctrl)))
	assert.False(t, b.Append(reflect.TypeOf(textItem{}), nil))
	// The type rejected above is still free to register.
	assert.True(t, b.Append(reflect.TypeOf(textItem{}), mocks.NewMockEntry(ctrl)))

	_, err := b.Build()
	require.Error(t, err)
	assert.ErrorIs(t, err, builder.ErrNilType)
	assert.ErrorIs(t, err, builder.ErrNilEntry)
	assert.Contains(t, err.Error(), "builder_test.textItem")
}

func TestNew_ZeroConfigUsesDefaultKeyProvider(t *testing.T) {
	b := builder.New(apis.Config{})
	require.True(t, b.Append(reflect.TypeOf(textItem{}), mocks.NewMockEntry(gomock.NewController(t))))

	reg, err := b.Build()
	require.NoError(t, err)

	vt, err := reg.AssignedViewType(textItem{})
	require.NoError(t, err)
	assert.Equal(t, keyprovider.Default().ProvideKey(reflect.TypeOf(textItem{})), vt)
}
