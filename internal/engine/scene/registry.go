package scene

import (
	"errors"
	"fmt"

	"github.com/Faultbox/scene-studio/pkg/math"
)

// ErrIndexOutOfRange is returned when an object index does not resolve.
var ErrIndexOutOfRange = errors.New("object index out of range")

// Registry is the ordered list of scene objects plus the selection.
// Removing an object shifts later indices down.
type Registry struct {
	objects    []Object
	selected   int
	nextHandle uint64
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{selected: -1, nextHandle: 1}
}

// Spawn appends a new object with default transform, material and texture
// and selects it. An empty name falls back to the source's default name;
// taken names get a " (n)" suffix.
func (r *Registry) Spawn(src MeshSource, mesh MeshID, name string, position *math.Vec3) int {
	r.selected = r.add(src, mesh, name, position)
	return r.selected
}

// add is Spawn without touching the selection.
func (r *Registry) add(src MeshSource, mesh MeshID, name string, position *math.Vec3) int {
	if name == "" {
		name = src.DefaultName()
	}
	obj := Object{
		Handle:    r.nextHandle,
		Name:      r.uniqueName(name),
		Source:    src,
		Mesh:      mesh,
		Transform: DefaultTransform(),
		Texture:   DefaultTexture,
		Material:  DefaultMaterial(),
	}
	if position != nil {
		obj.Transform.Position = *position
	}
	r.nextHandle++

	r.objects = append(r.objects, obj)
	return len(r.objects) - 1
}

func (r *Registry) uniqueName(name string) string {
	if !r.hasName(name) {
		return name
	}
	for n := 1; ; n++ {
		candidate := fmt.Sprintf("%s (%d)", name, n)
		if !r.hasName(candidate) {
			return candidate
		}
	}
}

func (r *Registry) hasName(name string) bool {
	for i := range r.objects {
		if r.objects[i].Name == name {
			return true
		}
	}
	return false
}

// Remove deletes the object at index and clears the selection. It reports
// false and changes nothing when index is out of range.
func (r *Registry) Remove(index int) bool {
	if index < 0 || index >= len(r.objects) {
		return false
	}
	r.objects = append(r.objects[:index], r.objects[index+1:]...)
	r.selected = -1
	return true
}

// RemoveSelected deletes the selected object, if any.
func (r *Registry) RemoveSelected() bool {
	if r.selected < 0 {
		return false
	}
	return r.Remove(r.selected)
}

func (r *Registry) object(index int) (*Object, error) {
	if index < 0 || index >= len(r.objects) {
		return nil, fmt.Errorf("%w: %d (have %d)", ErrIndexOutOfRange, index, len(r.objects))
	}
	return &r.objects[index], nil
}

// SetTransform replaces the transform of the object at index.
func (r *Registry) SetTransform(index int, t Transform) error {
	obj, err := r.object(index)
	if err != nil {
		return fmt.Errorf("set transform: %w", err)
	}
	obj.Transform = t
	return nil
}

// SetMaterial replaces the material of the object at index. Opacity is
// clamped to [0, 1] and shininess to non-negative values.
func (r *Registry) SetMaterial(index int, m Material) error {
	obj, err := r.object(index)
	if err != nil {
		return fmt.Errorf("set material: %w", err)
	}
	obj.Material = m.clamped()
	return nil
}

// SetTexture points the object at index to texture id.
func (r *Registry) SetTexture(index int, id TextureID) error {
	obj, err := r.object(index)
	if err != nil {
		return fmt.Errorf("set texture: %w", err)
	}
	obj.Texture = id
	return nil
}

func (r *Registry) setMesh(index int, src MeshSource, id MeshID) error {
	obj, err := r.object(index)
	if err != nil {
		return fmt.Errorf("set mesh: %w", err)
	}
	obj.Source = src
	obj.Mesh = id
	return nil
}

// Rename changes the display name of the object at index, keeping names
// unique.
func (r *Registry) Rename(index int, name string) error {
	obj, err := r.object(index)
	if err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	if name == obj.Name {
		return nil
	}
	obj.Name = r.uniqueName(name)
	return nil
}

// Select marks the object at index as selected.
func (r *Registry) Select(index int) error {
	if _, err := r.object(index); err != nil {
		return fmt.Errorf("select: %w", err)
	}
	r.selected = index
	return nil
}

// ClearSelection deselects any object.
func (r *Registry) ClearSelection() {
	r.selected = -1
}

// Selected returns the selected index, if any.
func (r *Registry) Selected() (int, bool) {
	return r.selected, r.selected >= 0
}

// Len returns the number of objects.
func (r *Registry) Len() int {
	return len(r.objects)
}

// At returns a copy of the object at index.
func (r *Registry) At(index int) (Object, bool) {
	if index < 0 || index >= len(r.objects) {
		return Object{}, false
	}
	return r.objects[index], true
}

// Objects returns a copy of every object in insertion order.
func (r *Registry) Objects() []Object {
	out := make([]Object, len(r.objects))
	copy(out, r.objects)
	return out
}

// IndexOf returns the current index of the object with handle.
func (r *Registry) IndexOf(handle uint64) (int, bool) {
	for i := range r.objects {
		if r.objects[i].Handle == handle {
			return i, true
		}
	}
	return -1, false
}
