package entities

// Priority is shared by fabrication requests and supply orders.
type Priority string

const (
	PriorityBaixa   Priority = "baixa"
	PriorityMedia   Priority = "media"
	PriorityAlta    Priority = "alta"
	PriorityUrgente Priority = "urgente"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityBaixa, PriorityMedia, PriorityAlta, PriorityUrgente:
		return true
	}
	return false
}
