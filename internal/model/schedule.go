package model

import "sort"

// Assignment places one task on an ordered list of replica hosts, all
// running at the same chosen clock frequency.
type Assignment struct {
	Hosts        []int   `json:"hosts"`
	FrequencyGhz float64 `json:"frequency_ghz"`
}

// Schedule is the mutable task-to-host assignment table. It is built fresh
// per fitness evaluation and never shared between candidates.
type Schedule struct {
	numTasks int
	numHosts int

	assignments map[int]Assignment
}

func NewSchedule(numTasks, numHosts int) *Schedule {
	return &Schedule{
		numTasks:    numTasks,
		numHosts:    numHosts,
		assignments: make(map[int]Assignment, numTasks),
	}
}

func (s *Schedule) Assign(taskId int, hosts []int, frequencyGhz float64) {
	s.assignments[taskId] = Assignment{
		Hosts:        hosts,
		FrequencyGhz: frequencyGhz,
	}
}

func (s *Schedule) Assignment(taskId int) (Assignment, bool) {
	assignment, ok := s.assignments[taskId]
	return assignment, ok
}

func (s *Schedule) Assigned(taskId int) bool {
	_, ok := s.assignments[taskId]
	return ok
}

func (s *Schedule) NumTasks() int {
	return s.numTasks
}

func (s *Schedule) NumHosts() int {
	return s.numHosts
}

// TaskIds returns the assigned task ids in ascending order.
func (s *Schedule) TaskIds() []int {
	ids := make([]int, 0, len(s.assignments))
	for id := range s.assignments {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

// Assignments returns a copy of the assignment table, keyed by task id.
func (s *Schedule) Assignments() map[int]Assignment {
	out := make(map[int]Assignment, len(s.assignments))
	for id, assignment := range s.assignments {
		hosts := make([]int, len(assignment.Hosts))
		copy(hosts, assignment.Hosts)
		out[id] = Assignment{Hosts: hosts, FrequencyGhz: assignment.FrequencyGhz}
	}

	return out
}

func (s *Schedule) Clone() *Schedule {
	ret := NewSchedule(s.numTasks, s.numHosts)
	for id, assignment := range s.Assignments() {
		ret.assignments[id] = assignment
	}

	return ret
}
