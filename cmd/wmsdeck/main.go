package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	deck "github.com/OnicaIon/WMSOpti"
)

func main() {
	out := flag.String("o", "WMS_Buffer_Optimization.pptx", "output pptx path")
	preview := flag.Bool("preview", false, "also render slide previews as PNG files next to the output")
	verify := flag.Bool("verify", false, "re-open the saved file and check the slide count")
	flag.Parse()

	composer := deck.NewComposer(nil)
	d, err := composer.BuildDeck(deckSpecs())
	if err != nil {
		fmt.Fprintf(os.Stderr, "compose: %v\n", err)
		os.Exit(1)
	}

	d.Properties().Title = "Warehouse Buffer Zone Optimization"
	d.Properties().Subject = "WMS Buffer Management System"

	if err := d.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "validate: %v\n", err)
		os.Exit(1)
	}

	if err := d.Save(*out); err != nil {
		fmt.Fprintf(os.Stderr, "save: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Deck saved: %s (%d slides)\n", *out, d.SlideCount())

	if *verify {
		info, err := deck.Open(*out)
		if err != nil {
			fmt.Fprintf(os.Stderr, "verify: %v\n", err)
			os.Exit(1)
		}
		if info.SlideCount != d.SlideCount() {
			fmt.Fprintf(os.Stderr, "verify: file has %d slides, want %d\n", info.SlideCount, d.SlideCount())
			os.Exit(1)
		}
		fmt.Printf("Verified: %d slides\n", info.SlideCount)
	}

	if *preview {
		dir := filepath.Dir(*out)
		pattern := filepath.Join(dir, "slide%02d.png")
		if err := d.SaveSlideImages(pattern, deck.DefaultRenderOptions()); err != nil {
			fmt.Fprintf(os.Stderr, "render: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Rendered %d previews to %s\n", d.SlideCount(), dir)
	}
}

// deckSpecs returns the full WMS buffer optimization deck in
// presentation order.
func deckSpecs() []deck.SlideSpec {
	return []deck.SlideSpec{
		{
			Kind:     deck.KindTitle,
			Title:    "Warehouse Buffer Zone Optimization",
			Subtitle: "WMS Buffer Management System",
		},
		{
			Kind:    deck.KindDiagram,
			Title:   "1. Current Situation",
			Diagram: "STORAGE  ──[3 forklifts]──►  BUFFER (64 cells)  ──[20 pickers]──►  PICKING",
			Bullets: []string{
				"• 3 forklift drivers deliver mono-pallets from storage to the buffer",
				"• 64 buffer cells provide temporary staging for picking",
				"• 20 pickers take goods and distribute them across orders",
				"• Problem: synchronizing pallet supply with picking speed",
			},
		},
		{
			Kind:    deck.KindTable,
			Title:   "2. Why It Matters — Losses",
			Headers: []string{"Situation", "Consequences"},
			Rows: [][]any{
				{"Buffer empty (<15%)", "Pickers idle, orders delayed"},
				{"Buffer overflowing (>70%)", "Forklifts wait for free cells"},
				{"Uneven workload", "Some overloaded, others idle"},
				{"Every flow disruption", "A whole order wave is delayed"},
			},
		},
		{
			Kind:  deck.KindContent,
			Title: "3. Solution — 3 Optimization Levels",
			Bullets: []string{
				"LEVEL 3: FORECASTING (Historical Layer)",
				"   → ML models predict task completion times",
				"",
				"LEVEL 2: PLANNING (Tactical Layer)",
				"   → OR-Tools optimizes assignments and the schedule",
				"",
				"LEVEL 1: REACTION (Realtime Layer)",
				"   → A hysteresis controller manages the buffer level",
				"",
				"Principle: Forecast → Plan → Execute → Adjust",
			},
		},
		{
			Kind:  deck.KindContent,
			Title: "4. ML Models for Forecasting",
			Bullets: []string{
				"Model 1: Picking time (Picker Duration)",
				"   Inputs: picker ID, line count, item count, hour, day of week",
				"   Output: predicted task completion time (seconds)",
				"",
				"Model 2: Forklift route time (Forklift Duration)",
				"   Inputs: forklift ID, source zone → target zone, pallet weight",
				"   Output: predicted delivery time (seconds)",
				"",
				"Training base: 1.5M historical records",
			},
		},
		{
			Kind:  deck.KindContent,
			Title: "5. Smart Picker Task Assignment",
			Bullets: []string{
				"Problem: not all pickers are equally efficient with all goods",
				"",
				"Solution — assign the task to whoever:",
				"",
				"   • Handles this product type best (from history)",
				"   • Is free now or will be free soon",
				"   • Is closest to the required buffer zone",
				"   • Has the lightest load in the current wave",
				"",
				"The ML model covers the link: picker + product + volume → time",
			},
		},
		{
			Kind:  deck.KindContent,
			Title: "6. Product Analytics",
			Bullets: []string{
				"For every product we compute:",
				"",
				"   • Average distribution time",
				"   • Time variability (stability)",
				"   • Typical quantity per task",
				"   • Frequency of occurrence",
				"",
				"Product complexity classification (1-10):",
				"   complexity = 0.4×time + 0.3×variability + 0.2×qty + 0.1×rarity",
				"",
				"   1-3: easy goods → any picker",
				"   4-6: medium → standard assignment",
				"   7-10: complex → experienced pickers",
			},
		},
		{
			Kind:  deck.KindContent,
			Title: "7. Schedule Optimization (OR-Tools)",
			Bullets: []string{
				"Objective: minimize total wave completion time",
				"",
				"We optimize TWO assignments simultaneously:",
				"   • Forklift → Pallet → Buffer cell",
				"   • Picker → Picking task",
				"",
				"Taking into account:",
				"   • Predicted time for every (picker, task) pair",
				"   • Current occupancy and time until free",
				"   • Load balancing across all workers",
				"",
				"Constraints: order priorities, heavy pallets to the bottom",
			},
		},
		{
			Kind:    deck.KindDiagram,
			Title:   "8. Optimization Cycle (every 15 minutes)",
			Diagram: "Orders (wave) → ML.NET forecast → OR-Tools CP-SAT → WMS execution → Feedback",
			Bullets: []string{
				"1. Receive the list of orders to pick",
				"2. ML predicts the time of every operation",
				"3. OR-Tools builds the optimal plan",
				"4. The plan is dispatched to the WMS for execution",
				"5. Results feed back into model improvement",
			},
		},
		{
			Kind:  deck.KindContent,
			Title: "9. Example: Forklifts (wave of 50 tasks)",
			Bullets: []string{
				"WITHOUT optimization:",
				"   Forklift 1: ████████████████████████ (overloaded)",
				"   Forklift 2: ████████░░░░░░░░░░░░░░░░ (underloaded)",
				"   Forklift 3: ██████████████░░░░░░░░░░ (average)",
				"",
				"WITH OR-Tools optimization:",
				"   Forklift 1: ████████████████░░░░░░░░ (balanced)",
				"   Forklift 2: ███████████████░░░░░░░░░ (balanced)",
				"   Forklift 3: ████████████████░░░░░░░░ (balanced)",
				"",
				"Result: wave time 45→32 min (-29%)",
			},
		},
		{
			Kind:  deck.KindContent,
			Title: "10. Example: Pickers (assignment by efficiency)",
			Bullets: []string{
				"WITHOUT optimization (random assignment):",
				"   Picker A takes product X → 8 min (not their specialty)",
				"   Picker B takes product Y → 10 min (not their specialty)",
				"",
				"WITH optimization (ML + OR-Tools):",
				"   Picker A takes product Y → 5 min (their best product)",
				"   Picker B takes product X → 4 min (their best product)",
				"",
				"We account for: who frees up soon, who is closer to the cell",
				"",
				"Result: picker idle time 12%→3% (-75%)",
			},
		},
		{
			Kind:    deck.KindTable,
			Title:   "11. Expected Results",
			Headers: []string{"Metric", "Before", "After", "Improvement"},
			Rows: [][]any{
				{"Wave time", "45 min", "32 min", "-29%"},
				{"Picker idle time", "12%", "3%", "-75%"},
				{"Critical situations", "5/day", "<1/day", "-80%"},
				{"Forklift mileage", "100%", "85%", "-15%"},
			},
		},
		{
			Kind:    deck.KindTable,
			Title:   "12. Rollout Plan",
			Headers: []string{"Stage", "Tasks", "Outcome"},
			Rows: [][]any{
				{"1. ML models", "Train on history", "Time forecasts"},
				{"2. Testing", "Compare with reality", "Accuracy assessment"},
				{"3. OR-Tools", "Integrate the optimizer", "Auto-scheduling"},
				{"4. Pilot", "Run on live data", "Validation"},
				{"5. Production", "Full WMS integration", "Autonomous operation"},
			},
		},
		{
			Kind:  deck.KindContent,
			Title: "13. Summary",
			Bullets: []string{
				"The WMS Buffer Management system will:",
				"",
				"• Assign tasks to the best performers (picker↔product)",
				"• Account for occupancy and time until free",
				"• Optimize forklift routes",
				"• Cut wave time by ~30%",
				"• Minimize staff idle time",
				"",
				"Foundation: 1.5M records + ML.NET + OR-Tools",
			},
		},
	}
}
