package profile

import "sort"

// aggregateColumn runs the single-pass aggregation for one column under its
// resolved type and returns the finished ColumnProfile.
func aggregateColumn(name string, values []string, t Type, topK int) ColumnProfile {
	col := ColumnProfile{Name: name, Type: t}

	// Frequency map for text columns. firstSeen keys the tie-break: when
	// counts are equal the value that appeared earlier in the row sequence
	// ranks first, so a plain sort over the map would not do.
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	order := 0

	// Distinct parsed floats for number columns, so that "1" and "1.0"
	// count as one value.
	var (
		numSeen map[float64]struct{}
		n       int
		sum     float64
		min     float64
		max     float64
	)
	if t == TypeNumber {
		numSeen = make(map[float64]struct{})
	}

	for _, raw := range values {
		v := resolve(raw, t)
		if v.IsMissing() {
			col.Missing++
			continue
		}
		if f, ok := v.Number(); ok {
			numSeen[f] = struct{}{}
			if n == 0 || f < min {
				min = f
			}
			if n == 0 || f > max {
				max = f
			}
			sum += f
			n++
			continue
		}
		s, _ := v.Text()
		if _, ok := counts[s]; !ok {
			firstSeen[s] = order
			order++
		}
		counts[s]++
	}

	if t == TypeNumber {
		col.Unique = len(numSeen)
		if n > 0 {
			mean := sum / float64(n)
			col.Min = &min
			col.Max = &max
			col.Mean = &mean
		}
		return col
	}

	col.Unique = len(counts)
	col.Top = topValues(counts, firstSeen, topK)
	return col
}

// topValues extracts the K most frequent values, count-descending, ties
// broken by first occurrence.
func topValues(counts map[string]int, firstSeen map[string]int, k int) []TopValue {
	if len(counts) == 0 || k <= 0 {
		return nil
	}
	top := make([]TopValue, 0, len(counts))
	for v, c := range counts {
		top = append(top, TopValue{Value: v, Count: c})
	}
	sort.Slice(top, func(i, j int) bool {
		if top[i].Count != top[j].Count {
			return top[i].Count > top[j].Count
		}
		return firstSeen[top[i].Value] < firstSeen[top[j].Value]
	})
	if len(top) > k {
		top = top[:k]
	}
	return top
}
