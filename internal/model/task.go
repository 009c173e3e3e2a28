package model

// Task is an immutable unit of work submitted by an IoT device. Critical
// tasks carry a minimum-reliability constraint on top of their deadline.
type Task struct {
	Id int

	WorkloadMi          float64
	InputSizeMb         float64
	OutputSizeMb        float64
	MemoryRequirementMb float64
	DeadlineS           float64

	Critical bool

	// Originating device, used for network lookups to and from hosts.
	SourceDeviceId int
}
