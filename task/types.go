package task

// Status represents the lifecycle state of a task.
type Status string

const (
	// StatusPendente indicates the task has not been started.
	StatusPendente Status = "Pendente"

	// StatusFazendo indicates the task is currently being worked on.
	StatusFazendo Status = "Fazendo"

	// StatusConcluida indicates the task has been completed.
	StatusConcluida Status = "Concluída"

	// StatusExcluida indicates the task has been logically deleted.
	// The record is retained in whichever collection holds it.
	StatusExcluida Status = "Excluída"
)

// ValidStatuses returns all valid status values.
func ValidStatuses() []Status {
	return []Status{StatusPendente, StatusFazendo, StatusConcluida, StatusExcluida}
}

// IsValid returns true if the status is a known valid value.
func (s Status) IsValid() bool {
	for _, valid := range ValidStatuses() {
		if s == valid {
			return true
		}
	}
	return false
}

// Priority represents the urgency level of a task.
type Priority string

const (
	// PriorityUrgente is the highest urgency level.
	PriorityUrgente Priority = "Urgente"

	// PriorityAlta is high urgency.
	PriorityAlta Priority = "Alta"

	// PriorityMedia is medium urgency.
	PriorityMedia Priority = "Média"

	// PriorityBaixa is the lowest urgency level.
	PriorityBaixa Priority = "Baixa"
)

// PriorityOrder returns all priorities from most to least urgent. The
// urgency scan in SelectNextUrgent walks this order.
func PriorityOrder() []Priority {
	return []Priority{PriorityUrgente, PriorityAlta, PriorityMedia, PriorityBaixa}
}

// ValidPriorities returns all valid priority values.
func ValidPriorities() []Priority {
	return PriorityOrder()
}

// IsValid returns true if the priority is a known valid value.
func (p Priority) IsValid() bool {
	for _, valid := range ValidPriorities() {
		if p == valid {
			return true
		}
	}
	return false
}

// PriorityRank returns the sort rank for a priority (0 = most urgent).
func PriorityRank(p Priority) int {
	for i, valid := range PriorityOrder() {
		if p == valid {
			return i
		}
	}
	return len(PriorityOrder())
}

// Origin represents where a task came from.
type Origin string

const (
	// OriginEmail is a task created from an e-mail.
	OriginEmail Origin = "E-mail"

	// OriginTelefone is a task created from a phone call.
	OriginTelefone Origin = "Telefone"

	// OriginChamado is a task created from a system ticket.
	OriginChamado Origin = "Chamado do Sistema"
)

// ValidOrigins returns all valid origin values.
func ValidOrigins() []Origin {
	return []Origin{OriginEmail, OriginTelefone, OriginChamado}
}

// IsValid returns true if the origin is a known valid value.
func (o Origin) IsValid() bool {
	for _, valid := range ValidOrigins() {
		if o == valid {
			return true
		}
	}
	return false
}
