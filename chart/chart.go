// Package chart generates sample bar chart data for a free-text topic.
package chart

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/hatcher/genui/pkg/util"
)

type Point struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

type Chart struct {
	Title string  `json:"title"`
	Data  []Point `json:"data"`
}

// Generator draws chart values from an injected random source. It is safe
// for concurrent use.
type Generator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewGenerator uses src for every value. A seeded source gives
// reproducible charts.
func NewGenerator(src rand.Source) *Generator {
	return &Generator{rnd: rand.New(src)}
}

// NewSeededGenerator seeds a PCG source with seed, or with the clock when
// seed is zero.
func NewSeededGenerator(seed uint64) *Generator {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return NewGenerator(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Generate builds the chart for topic. An empty topic means DefaultTopic.
func (g *Generator) Generate(topic string) Chart {
	if topic == "" {
		topic = DefaultTopic
	}
	tpl := Resolve(topic)

	g.mu.Lock()
	defer g.mu.Unlock()
	data := make([]Point, len(tpl.Labels))
	for i, label := range tpl.Labels {
		data[i] = Point{Label: label, Value: tpl.Min + g.rnd.IntN(tpl.Max-tpl.Min+1)}
	}
	return Chart{Title: util.UpperFirst(topic), Data: data}
}
