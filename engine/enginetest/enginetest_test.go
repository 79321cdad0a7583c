package enginetest

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodeSmile-0000011110110111/de.codesmile.testtools/engine"
)

func TestNewStartsWithUntitledScene(t *testing.T) {
	e := New(t.TempDir())

	active := e.ActiveScene()
	require.NotNil(t, active)
	assert.Equal(t, "Untitled", active.Name())
	assert.Empty(t, active.RootObjects())
}

func TestCreateSceneEmpty(t *testing.T) {
	e := New(t.TempDir())

	s, err := e.CreateScene(engine.SetupEmpty, "Test Scene")
	require.NoError(t, err)

	assert.Equal(t, "Test Scene", s.Name())
	assert.Empty(t, s.RootObjects())
	assert.Same(t, s, e.ActiveScene())
	assert.Equal(t, 1, e.CreateCalls())
}

func TestCreateSceneDefaultObjects(t *testing.T) {
	e := New(t.TempDir())

	s, err := e.CreateScene(engine.SetupDefaultObjects, "Test Scene")
	require.NoError(t, err)

	roots := s.RootObjects()
	require.Len(t, roots, 2)
	assert.Equal(t, "Main Camera", roots[0].Name())
	assert.Equal(t, "Directional Light", roots[1].Name())
}

func TestInstantiate(t *testing.T) {
	e := New(t.TempDir())

	obj, err := e.Instantiate("Player", "Transform", "Rigidbody")
	require.NoError(t, err)

	assert.Equal(t, "Player", obj.Name())

	concrete, ok := obj.(*GameObject)
	require.True(t, ok)
	assert.Equal(t, []engine.ComponentType{"Transform", "Rigidbody"}, concrete.Components())
	assert.NotEqual(t, concrete.ID().String(), "00000000-0000-0000-0000-000000000000")

	roots := e.ActiveScene().RootObjects()
	require.Len(t, roots, 1)
	assert.Same(t, obj, roots[0])
}

func TestInstantiateUniqueIDs(t *testing.T) {
	e := New(t.TempDir())

	a, err := e.Instantiate("First")
	require.NoError(t, err)
	b, err := e.Instantiate("Second")
	require.NoError(t, err)

	assert.NotEqual(t, a.(*GameObject).ID(), b.(*GameObject).ID())
}

func TestInstantiateUnknownComponent(t *testing.T) {
	e := New(t.TempDir())

	_, err := e.Instantiate("Player", "Transform", "FluxCapacitor")
	require.Error(t, err)
	assert.ErrorIs(t, err, engine.ErrUnknownComponent)
	assert.Contains(t, err.Error(), "FluxCapacitor")

	// A failed instantiation leaves the scene untouched.
	assert.Empty(t, e.ActiveScene().RootObjects())
}

func TestDestroyImmediate(t *testing.T) {
	e := New(t.TempDir())

	obj, err := e.Instantiate("Player")
	require.NoError(t, err)

	e.DestroyImmediate(obj)

	assert.Empty(t, e.ActiveScene().RootObjects())
	assert.True(t, obj.(*GameObject).Destroyed())
}

func TestDestroyDeferredWaitsForAdvance(t *testing.T) {
	e := New(t.TempDir())

	obj, err := e.Instantiate("Player")
	require.NoError(t, err)

	e.DestroyDeferred(obj)

	// Still present until the frame ends.
	assert.Len(t, e.ActiveScene().RootObjects(), 1)
	assert.True(t, obj.(*GameObject).PendingDestroy())
	assert.False(t, obj.(*GameObject).Destroyed())

	e.Advance()

	assert.Empty(t, e.ActiveScene().RootObjects())
	assert.True(t, obj.(*GameObject).Destroyed())
}

func TestDestroyForeignHandleIgnored(t *testing.T) {
	e := New(t.TempDir())

	_, err := e.Instantiate("Player")
	require.NoError(t, err)

	e.DestroyImmediate(foreignObject{})
	e.DestroyDeferred(foreignObject{})
	e.Advance()

	assert.Len(t, e.ActiveScene().RootObjects(), 1)
}

func TestSaveSceneRoundTrip(t *testing.T) {
	dir := t.TempDir()
	e := New(dir)

	_, err := e.CreateScene(engine.SetupDefaultObjects, "Test Scene")
	require.NoError(t, err)
	_, err = e.Instantiate("Enemy", "Transform", "BoxCollider")
	require.NoError(t, err)

	require.NoError(t, e.SaveScene(e.ActiveScene(), "Assets/Level1.unity"))

	file := filepath.Join(dir, "Assets", "Level1.unity")
	require.FileExists(t, file)

	sf, err := ReadSceneFile(file)
	require.NoError(t, err)
	assert.Equal(t, "Test Scene", sf.Name)
	require.Len(t, sf.Objects, 3)
	assert.Equal(t, "Main Camera", sf.Objects[0].Name)
	assert.Equal(t, "Directional Light", sf.Objects[1].Name)
	assert.Equal(t, "Enemy", sf.Objects[2].Name)
	assert.Equal(t, []string{"Transform", "BoxCollider"}, sf.Objects[2].Components)
}

func TestSaveSceneWithoutAssetDir(t *testing.T) {
	e := New("")

	err := e.SaveScene(e.ActiveScene(), "Assets/Level1.unity")
	assert.ErrorIs(t, err, engine.ErrNoAssetDir)
}

func TestSaveSceneInjectedFailure(t *testing.T) {
	e := New(t.TempDir())
	boom := errors.New("disk full")
	e.FailSave = boom

	err := e.SaveScene(e.ActiveScene(), "Assets/Level1.unity")
	assert.ErrorIs(t, err, boom)
}

func TestDeleteAsset(t *testing.T) {
	dir := t.TempDir()
	e := New(dir)

	require.NoError(t, e.SaveScene(e.ActiveScene(), "Assets/Level1.unity"))
	require.NoError(t, e.DeleteAsset("Assets/Level1.unity"))

	_, err := os.Stat(filepath.Join(dir, "Assets", "Level1.unity"))
	assert.True(t, os.IsNotExist(err))
}

func TestDeleteAssetMissing(t *testing.T) {
	e := New(t.TempDir())

	err := e.DeleteAsset("Assets/Never-Saved.unity")
	assert.Error(t, err)
}

func TestDeleteAssetInjectedFailure(t *testing.T) {
	e := New(t.TempDir())
	boom := errors.New("asset database locked")
	e.FailDelete = boom

	err := e.DeleteAsset("Assets/Level1.unity")
	assert.ErrorIs(t, err, boom)
}

func TestLoadSceneAsyncUnsupported(t *testing.T) {
	e := New(t.TempDir())

	err := e.LoadSceneAsync(context.Background(), "Assets/Level1.unity", engine.LoadSingle)
	assert.ErrorIs(t, err, engine.ErrPlayModeUnsupported)
}

// foreignObject implements engine.GameObject without being one of the
// fake's handles.
type foreignObject struct{}

func (foreignObject) Name() string { return "Foreign" }
