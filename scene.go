package arbor

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// layer is an unordered bucket of root nodes within a scene.
type layer = map[*Node]struct{}

// Scene is a named, layered container of root-eligible nodes. Layers are
// ordered; higher layers iterate after lower ones during traversal. Within
// one scene a node lives in at most one layer: adding an already-present
// node moves it. A scene always keeps at least one layer.
//
// Scenes belong to a Stage registry; exactly one scene per stage is
// current at any time. Create scenes with Stage.NewScene.
type Scene struct {
	Name              string
	Background        Color
	BackgroundTexture *ebiten.Image

	layers []layer
	stage  *Stage
}

// Stage returns the stage the scene is registered with.
func (s *Scene) Stage() *Stage { return s.stage }

// CountLayers returns the number of layers.
func (s *Scene) CountLayers() int { return len(s.layers) }

// AddLayer inserts a new empty layer at index and returns the index it
// ended up at. A negative or out-of-range index appends a top layer.
func (s *Scene) AddLayer(index int) int {
	if index < 0 || index >= len(s.layers) {
		index = len(s.layers)
	}
	s.layers = append(s.layers, nil)
	copy(s.layers[index+1:], s.layers[index:])
	s.layers[index] = make(layer)
	return index
}

// RemoveLayer removes the layer at index together with its contents. A
// negative or out-of-range index removes the top layer. When only one
// layer remains it is cleared instead of removed, so a scene never drops
// below one layer.
func (s *Scene) RemoveLayer(index int) {
	if len(s.layers) == 1 {
		clear(s.layers[0])
		return
	}
	if index < 0 || index >= len(s.layers) {
		index = len(s.layers) - 1
	}
	s.layers = append(s.layers[:index], s.layers[index+1:]...)
}

// ClearLayer removes every node from the layer at index. Out-of-range
// indices are ignored.
func (s *Scene) ClearLayer(index int) {
	if index < 0 || index >= len(s.layers) {
		return
	}
	clear(s.layers[index])
}

// SwapLayers exchanges the contents of two layers. Invalid or equal
// indices are ignored.
func (s *Scene) SwapLayers(i, j int) {
	if i == j || i < 0 || i >= len(s.layers) || j < 0 || j >= len(s.layers) {
		return
	}
	s.layers[i], s.layers[j] = s.layers[j], s.layers[i]
}

// NodeLayer returns the index of the layer holding n, or -1 when the scene
// does not contain it.
func (s *Scene) NodeLayer(n *Node) int {
	if n == nil {
		return -1
	}
	for i, l := range s.layers {
		if _, ok := l[n]; ok {
			return i
		}
	}
	return -1
}

// Count returns the number of nodes across every layer.
func (s *Scene) Count() int {
	total := 0
	for _, l := range s.layers {
		total += len(l)
	}
	return total
}

// CountInLayer returns the number of nodes in the layer at index, or 0 for
// an out-of-range index.
func (s *Scene) CountInLayer(index int) int {
	if index < 0 || index >= len(s.layers) {
		return 0
	}
	return len(s.layers[index])
}

// Add inserts n as a root node of the layer at layerIndex, removing it
// from every other layer of this scene first so membership stays unique.
// A negative or out-of-range index targets the top layer. A nil node is
// ignored.
func (s *Scene) Add(n *Node, layerIndex int) {
	if n == nil {
		return
	}
	if layerIndex < 0 || layerIndex >= len(s.layers) {
		layerIndex = len(s.layers) - 1
	}
	for _, l := range s.layers {
		delete(l, n)
	}
	s.layers[layerIndex][n] = struct{}{}
}

// Remove removes n from every layer of the scene.
func (s *Scene) Remove(n *Node) {
	if n == nil {
		return
	}
	for _, l := range s.layers {
		delete(l, n)
	}
}

// Clear removes every node from every layer.
func (s *Scene) Clear() {
	for _, l := range s.layers {
		clear(l)
	}
}

// RemoveIf removes every node satisfying predicate and returns the number
// removed.
func (s *Scene) RemoveIf(predicate func(*Node) bool) int {
	if predicate == nil {
		return 0
	}
	count := 0
	for _, l := range s.layers {
		for n := range l {
			if predicate(n) {
				delete(l, n)
				count++
			}
		}
	}
	return count
}

// Contains reports whether n is a root node of the scene, or when
// recursive is set, a descendant of any root node.
func (s *Scene) Contains(n *Node, recursive bool) bool {
	if n == nil {
		return false
	}
	for _, l := range s.layers {
		if _, ok := l[n]; ok {
			return true
		}
		if !recursive {
			continue
		}
		for root := range l {
			if root.ContainsChild(n, true) {
				return true
			}
		}
	}
	return false
}

// ContainsInLayer reports whether n is in the layer at index, or when
// recursive is set, a descendant of one of that layer's roots.
func (s *Scene) ContainsInLayer(n *Node, index int, recursive bool) bool {
	if n == nil || index < 0 || index >= len(s.layers) {
		return false
	}
	if _, ok := s.layers[index][n]; ok {
		return true
	}
	if !recursive {
		return false
	}
	for root := range s.layers[index] {
		if root.ContainsChild(n, true) {
			return true
		}
	}
	return false
}

// ForEach runs action for every node, lower layers first, and returns the
// number visited. Iteration order within a layer is unspecified.
func (s *Scene) ForEach(action func(*Node)) int {
	if action == nil {
		return 0
	}
	count := 0
	for _, l := range s.layers {
		for n := range l {
			action(n)
			count++
		}
	}
	return count
}

// ForEachIf runs action for every node satisfying predicate and returns
// the number visited. A nil predicate visits every node.
func (s *Scene) ForEachIf(action func(*Node), predicate func(*Node) bool) int {
	if action == nil {
		return 0
	}
	if predicate == nil {
		return s.ForEach(action)
	}
	count := 0
	for _, l := range s.layers {
		for n := range l {
			if predicate(n) {
				action(n)
				count++
			}
		}
	}
	return count
}

// ForEachInLayer runs action for every node in the layer at index and
// returns the number visited.
func (s *Scene) ForEachInLayer(action func(*Node), index int) int {
	if action == nil || index < 0 || index >= len(s.layers) {
		return 0
	}
	count := 0
	for n := range s.layers[index] {
		action(n)
		count++
	}
	return count
}

// ForEachInLayerIf runs action for every node in the layer at index that
// satisfies predicate and returns the number visited.
func (s *Scene) ForEachInLayerIf(action func(*Node), predicate func(*Node) bool, index int) int {
	if action == nil || index < 0 || index >= len(s.layers) {
		return 0
	}
	if predicate == nil {
		return s.ForEachInLayer(action, index)
	}
	count := 0
	for n := range s.layers[index] {
		if predicate(n) {
			action(n)
			count++
		}
	}
	return count
}

// Find returns the first node with the given name, or nil. Lower layers
// are searched first.
func (s *Scene) Find(name string) *Node {
	for _, l := range s.layers {
		for n := range l {
			if n.Name == name {
				return n
			}
		}
	}
	return nil
}

// FindIf returns the first node satisfying predicate, or nil.
func (s *Scene) FindIf(predicate func(*Node) bool) *Node {
	if predicate == nil {
		return nil
	}
	for _, l := range s.layers {
		for n := range l {
			if predicate(n) {
				return n
			}
		}
	}
	return nil
}

// FindInLayer returns the first node with the given name in the layer at
// index, or nil.
func (s *Scene) FindInLayer(name string, index int) *Node {
	if index < 0 || index >= len(s.layers) {
		return nil
	}
	for n := range s.layers[index] {
		if n.Name == name {
			return n
		}
	}
	return nil
}

// FindInLayerIf returns the first node satisfying predicate in the layer
// at index, or nil.
func (s *Scene) FindInLayerIf(predicate func(*Node) bool, index int) *Node {
	if predicate == nil || index < 0 || index >= len(s.layers) {
		return nil
	}
	for n := range s.layers[index] {
		if predicate(n) {
			return n
		}
	}
	return nil
}
