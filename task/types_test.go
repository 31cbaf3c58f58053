package task

import "testing"

func TestStatusIsValid(t *testing.T) {
	for _, status := range ValidStatuses() {
		if !status.IsValid() {
			t.Errorf("expected %q to be valid", status)
		}
	}
	if Status("Arquivada").IsValid() {
		t.Error("expected 'Arquivada' to be invalid")
	}
	if Status("pendente").IsValid() {
		t.Error("status matching is case-sensitive; 'pendente' must be invalid")
	}
}

func TestPriorityRank(t *testing.T) {
	if PriorityRank(PriorityUrgente) != 0 {
		t.Error("Urgente must rank first")
	}
	if PriorityRank(PriorityBaixa) != 3 {
		t.Error("Baixa must rank last")
	}
	if PriorityRank("Crítica") != 4 {
		t.Error("unknown priorities rank after all valid ones")
	}
}

func TestOriginIsValid(t *testing.T) {
	for _, origin := range ValidOrigins() {
		if !origin.IsValid() {
			t.Errorf("expected %q to be valid", origin)
		}
	}
	if Origin("Fax").IsValid() {
		t.Error("expected 'Fax' to be invalid")
	}
}
