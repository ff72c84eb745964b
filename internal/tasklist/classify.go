package tasklist

// Partition splits tasks into the untimed and timed buckets, each preserving
// the relative parse order of its members.
//
// This function is pure: it does not mutate the input slice.
func Partition(tasks []Task) (untimed, timed []Task) {
	for _, t := range tasks {
		if t.Timed() {
			timed = append(timed, t)
		} else {
			untimed = append(untimed, t)
		}
	}
	return untimed, timed
}
