package knit

// Courses groups the graph's loops into courses (rows) and returns two
// mappings: loop id to course number, and course number to the loop ids on
// that course in creation order. Together they are the data contract the
// downstream machine-instruction generator consumes.
//
// # Algorithm
//
// Loops are scanned in ascending id order starting at 0, carrying a running
// course counter that starts at 0. A loop opens a new course exactly when
// one of its parents is already assigned to the running course - a loop can
// never share a row with its own parent. Parentless loops (cast-on loops,
// yarn-overs) do not force a boundary; they inherit the running course.
// The scan is a single forward pass with no backtracking: once a boundary
// is emitted it is never retracted.
//
// An empty graph yields two empty maps.
//
// # Performance
//
// Time complexity is O(n*m), where n is the loop count and m the largest
// parent stack on a single loop (rarely more than 3).
func (g *Graph) Courses() (map[int]int, map[int][]int) {
	loopToCourse := make(map[int]int, len(g.loops))
	courseToLoops := make(map[int][]int)

	if !g.Contains(0) {
		return loopToCourse, courseToLoops
	}

	course := 0
	for id := 0; id <= g.lastLoopID; id++ {
		for _, parentID := range g.loops[id].parents {
			if parentCourse, assigned := loopToCourse[parentID]; assigned && parentCourse == course {
				course++
				break
			}
		}
		loopToCourse[id] = course
		courseToLoops[course] = append(courseToLoops[course], id)
	}

	return loopToCourse, courseToLoops
}

// CourseCount returns the number of courses [Graph.Courses] would produce.
func (g *Graph) CourseCount() int {
	_, courses := g.Courses()
	return len(courses)
}
