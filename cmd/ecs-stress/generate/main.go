// Command generate emits the stress components and systems compiled
// into ecs-stress. Run it from cmd/ecs-stress:
//
//	go run ./generate -components 12 -systems 6 -out generated.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"text/template"

	"golang.org/x/tools/imports"
)

type templateData struct {
	Components []componentData
	Systems    []systemData
}

type componentData struct {
	Index int
	Name  string
	Const string
	Kind  string
}

type systemData struct {
	Index    int
	Name     string
	Priority int
	Requires []componentData
	Op       string
}

const sourceTemplate = `// Code generated by generate/main.go; DO NOT EDIT.

package main

import (
	"math"
	"math/rand"

	"github.com/plus3/worldkit/ecs"
)

const (
{{- range .Components}}
	{{.Const}} ecs.ComponentKind = "{{.Kind}}"
{{- end}}
)

{{range .Components}}
type {{.Name}} struct {
	ValueA  float64
	ValueB  float64
	Counter int64
}

func (*{{.Name}}) Kind() ecs.ComponentKind { return {{.Const}} }
{{end}}

var allStressKinds = []ecs.ComponentKind{
{{- range .Components}}
	{{.Const}},
{{- end}}
}

var componentFactories = map[ecs.ComponentKind]func(rng *rand.Rand) ecs.Component{
{{- range .Components}}
	{{.Const}}: func(rng *rand.Rand) ecs.Component {
		return &{{.Name}}{ValueA: rng.Float64(), ValueB: rng.Float64()}
	},
{{- end}}
}

// SpawnRandomEntity queues one entity carrying numComponents distinct
// random stress components.
func SpawnRandomEntity(w *ecs.World, numComponents int, rng *rand.Rand) *ecs.Entity {
	if numComponents > len(allStressKinds) {
		numComponents = len(allStressKinds)
	}
	e := w.CreateEntity()
	perm := rng.Perm(len(allStressKinds))
	for _, idx := range perm[:numComponents] {
		kind := allStressKinds[idx]
		e.AddComponent(componentFactories[kind](rng))
	}
	return e
}

{{range .Systems}}
type {{.Name}} struct {
	ecs.BaseSystem
}

func New{{.Name}}() *{{.Name}} {
	return &{{.Name}}{BaseSystem: ecs.NewBaseSystem({{.Priority}}{{range .Requires}}, {{.Const}}{{end}})}
}

func (s *{{.Name}}) Update(entities []*ecs.Entity, dt float64) {
	for _, e := range entities {
{{- range $i, $r := .Requires}}
		{{opVar $i}}, _ := ecs.Get[*{{$r.Name}}](e, {{$r.Const}})
{{- end}}
		{{.Op}}
		a.Counter++
	}
}
{{end}}

// RegisterAllGeneratedSystems registers every generated stress system
// on the world's logic pipeline.
func RegisterAllGeneratedSystems(w *ecs.World) {
{{- range .Systems}}
	w.AddSystem(New{{.Name}}())
{{- end}}
}

const (
	generatedComponentCount = {{len .Components}}
	generatedSystemCount    = {{len .Systems}}
)
`

var opVars = []string{"a", "b", "c", "d"}

var ops = []string{
	`a.ValueA += a.ValueB * dt`,
	`a.ValueA = math.Mod(a.ValueA+b.ValueA*dt, 1000.0)`,
	`a.ValueB = math.Sqrt(math.Abs(a.ValueA*b.ValueB)) + dt`,
	`a.ValueA = math.Sin(a.ValueA) + math.Cos(b.ValueA)*dt`,
	`a.ValueA += (b.ValueA + c.ValueA) * dt`,
	`a.ValueB = math.Mod(a.ValueB+b.ValueB+dt, 360.0)`,
}

// requiresPerOp mirrors how many components each op reads.
var requiresPerOp = []int{1, 2, 2, 2, 3, 2}

func main() {
	componentCount := flag.Int("components", 12, "Number of stress components to generate.")
	systemCount := flag.Int("systems", 6, "Number of stress systems to generate.")
	out := flag.String("out", "generated.go", "Output file, relative to cmd/ecs-stress.")
	flag.Parse()

	data := buildData(*componentCount, *systemCount)

	tmpl := template.Must(template.New("generated").Funcs(template.FuncMap{
		"opVar": func(i int) string { return opVars[i] },
	}).Parse(sourceTemplate))

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		log.Fatalf("execute template: %v", err)
	}

	formatted, err := imports.Process(*out, buf.Bytes(), nil)
	if err != nil {
		log.Fatalf("format generated source: %v", err)
	}

	if err := os.WriteFile(*out, formatted, 0o644); err != nil {
		log.Fatalf("write %s: %v", *out, err)
	}
	log.Printf("wrote %s: %d components, %d systems", *out, *componentCount, *systemCount)
}

func buildData(componentCount, systemCount int) templateData {
	var data templateData
	for i := 1; i <= componentCount; i++ {
		data.Components = append(data.Components, componentData{
			Index: i,
			Name:  fmt.Sprintf("StressComponent%02d", i),
			Const: fmt.Sprintf("KindStress%02d", i),
			Kind:  fmt.Sprintf("stress:component%02d", i),
		})
	}

	// Each system reads a distinct run of components, wrapping around
	// when the component pool is smaller than the demand.
	next := 0
	for i := 1; i <= systemCount; i++ {
		op := ops[(i-1)%len(ops)]
		need := requiresPerOp[(i-1)%len(requiresPerOp)]
		var reqs []componentData
		for j := 0; j < need; j++ {
			reqs = append(reqs, data.Components[next%componentCount])
			next++
		}
		data.Systems = append(data.Systems, systemData{
			Index:    i,
			Name:     fmt.Sprintf("StressSystem%02d", i),
			Priority: i,
			Requires: reqs,
			Op:       op,
		})
	}
	return data
}
