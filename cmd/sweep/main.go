package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"sync"
	"time"

	"terrain-bg/internal/terrain"
)

type paramSet struct {
	octaves     int
	persistence float64
	lacunarity  float64
	preset      string
}

func (p paramSet) String() string {
	return fmt.Sprintf("octaves=%d persistence=%.2f lacunarity=%.2f preset=%s",
		p.octaves, p.persistence, p.lacunarity, p.preset)
}

type scenarioResult struct {
	params   paramSet
	coverage terrain.Coverage
	land     float64
	pngBytes int
	elapsed  time.Duration
	err      error
}

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	width := flag.Int("w", 320, "texture width for each run")
	height := flag.Int("h", 180, "texture height for each run")
	seed := flag.Int64("seed", 1337, "seed shared by every run")
	top := flag.Int("top", 5, "number of results to print")
	flag.Parse()

	base := terrain.DefaultRequest()
	base.Width = *width
	base.Height = *height
	base.Seed = seed

	sets := grid(
		[]int{2, 4, 6},
		[]float64{0.35, 0.5, 0.65},
		[]float64{1.8, 2.0, 2.4},
		[]string{"gentle", "steep"},
	)
	fmt.Printf("Sweeping %d parameter sets (%d workers, %dx%d)\n", len(sets), *workers, *width, *height)

	start := time.Now()
	all := sweep(base, sets, *workers)
	elapsed := time.Since(start)

	failed := 0
	for _, res := range all {
		if res.err != nil {
			failed++
			log.Printf("%s: %v", res.params, res.err)
		}
	}

	fmt.Printf("\nTop %d by land share (elapsed %s, %d failed):\n", *top, elapsed.Round(time.Millisecond), failed)
	for i := 0; i < len(all) && i < *top; i++ {
		res := all[i]
		if res.err != nil {
			break
		}
		fmt.Printf("%2d) land=%.1f%% deep=%.1f%% shallow=%.1f%% snow=%.1f%% png=%dB time=%s %s\n",
			i+1, 100*res.land,
			100*res.coverage.Fraction(terrain.BiomeDeepWater),
			100*res.coverage.Fraction(terrain.BiomeShallowWater),
			100*res.coverage.Fraction(terrain.BiomeSnow),
			res.pngBytes, res.elapsed.Round(time.Millisecond), res.params)
	}
}

func grid(octaves []int, persistence, lacunarity []float64, presets []string) []paramSet {
	var sets []paramSet
	for _, o := range octaves {
		for _, p := range persistence {
			for _, l := range lacunarity {
				for _, preset := range presets {
					sets = append(sets, paramSet{octaves: o, persistence: p, lacunarity: l, preset: preset})
				}
			}
		}
	}
	return sets
}

// sweep generates every set on a pool of workers and returns the results
// sorted by land share, failures last.
func sweep(base terrain.Request, sets []paramSet, workers int) []scenarioResult {
	if workers < 1 {
		workers = 1
	}
	jobs := make(chan paramSet)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range jobs {
				results <- runScenario(base, params)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, params := range sets {
			jobs <- params
		}
		close(jobs)
	}()

	var all []scenarioResult
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool {
		if (all[i].err == nil) != (all[j].err == nil) {
			return all[i].err == nil
		}
		if all[i].land != all[j].land {
			return all[i].land > all[j].land
		}
		return all[i].params.String() < all[j].params.String()
	})
	return all
}

func runScenario(base terrain.Request, params paramSet) scenarioResult {
	req := base
	req.Octaves.Count = params.octaves
	req.Octaves.Persistence = params.persistence
	req.Octaves.Lacunarity = params.lacunarity
	res := scenarioResult{params: params}

	falloff, err := terrain.Preset(params.preset)
	if err != nil {
		res.err = err
		return res
	}
	req.Falloff = falloff

	start := time.Now()
	payload, err := terrain.Generate(req)
	res.elapsed = time.Since(start)
	if err != nil {
		res.err = err
		return res
	}
	res.coverage = payload.Stats.Coverage
	cov := payload.Stats.Coverage
	water := cov[terrain.BiomeDeepWater] + cov[terrain.BiomeShallowWater]
	res.land = float64(payload.Width*payload.Height-water) / float64(payload.Width*payload.Height)
	res.pngBytes = len(payload.PNG)
	return res
}
