package cmd

import (
	"io/ioutil"

	yaml "gopkg.in/yaml.v2"

	"github.com/ArgishtiAyvazyan/geometry"
	"github.com/ArgishtiAyvazyan/geometry/quadtree"
)

// rectSpec is the YAML shape of one rectangle entry in a scenario file.
type rectSpec struct {
	X int32 `yaml:"x"`
	Y int32 `yaml:"y"`
	W int32 `yaml:"w"`
	H int32 `yaml:"h"`
}

func (s rectSpec) toRect() geometry.Rect[int32] {
	return geometry.NewRect(geometry.NewPoint(s.X, s.Y), s.W, s.H)
}

// scenario is a YAML file describing a set of rectangles to index and a
// set of query windows to run against them, the input format geomcli's
// insert and query subcommands share.
type scenario struct {
	Rects   []rectSpec `yaml:"rects"`
	Queries []rectSpec `yaml:"queries"`
}

// loadScenario reads and parses the YAML scenario file at path.
func loadScenario(path string) (*scenario, error) {
	buf, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s scenario
	if err := yaml.Unmarshal(buf, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// buildTree indexes every rectangle in s into a fresh Tree.
func buildTree(s *scenario) *quadtree.Tree[int32, geometry.Rect[int32]] {
	tree := quadtree.New[int32, geometry.Rect[int32]]()
	for _, r := range s.Rects {
		tree.Insert(r.toRect())
	}
	return tree
}
