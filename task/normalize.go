package task

import "strings"

// NormalizePriority maps free-form input to a canonical priority value.
// Matching is case-insensitive ("urgente" and "Urgente" are equivalent).
func NormalizePriority(input string) (Priority, error) {
	trimmed := strings.TrimSpace(input)
	for _, p := range ValidPriorities() {
		if strings.EqualFold(trimmed, string(p)) {
			return p, nil
		}
	}
	return "", formatInvalidPriorityError(Priority(input))
}

// NormalizeOrigin maps free-form input to a canonical origin value.
// Matching is case-insensitive, and common shorthand for the system
// ticket origin ("chamado", "chamadodosistema") is accepted.
func NormalizeOrigin(input string) (Origin, error) {
	key := strings.ToLower(strings.TrimSpace(input))
	key = strings.ReplaceAll(key, " ", "")
	switch key {
	case "e-mail", "email":
		return OriginEmail, nil
	case "telefone":
		return OriginTelefone, nil
	case "chamado", "chamadodosistema":
		return OriginChamado, nil
	}
	return "", formatInvalidOriginError(Origin(input))
}

// NormalizeStatus maps free-form input to a canonical status value.
func NormalizeStatus(input string) (Status, error) {
	trimmed := strings.TrimSpace(input)
	for _, s := range ValidStatuses() {
		if strings.EqualFold(trimmed, string(s)) {
			return s, nil
		}
	}
	return "", formatInvalidStatusError(Status(input))
}
