package http

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/jhoicas/tienda-api/internal/domain/access"
)

const notificationsKey = "notifications"

// Notifier encola notificaciones de un solo uso en la sesión del navegador.
// Se guardan como JSON para no depender del registro de tipos de gob.
type Notifier struct {
	store *session.Store
}

// NewNotifier construye el notificador sobre un session.Store.
func NewNotifier(store *session.Store) *Notifier {
	return &Notifier{store: store}
}

// Push agrega n a la cola de la sesión actual.
func (n *Notifier) Push(c *fiber.Ctx, note access.Notification) error {
	sess, err := n.store.Get(c)
	if err != nil {
		return err
	}
	queue := decodeQueue(sess.Get(notificationsKey))
	queue = append(queue, note)
	raw, err := json.Marshal(queue)
	if err != nil {
		return err
	}
	sess.Set(notificationsKey, string(raw))
	return sess.Save()
}

// Pop devuelve y vacía la cola. Nunca devuelve nil.
func (n *Notifier) Pop(c *fiber.Ctx) ([]access.Notification, error) {
	sess, err := n.store.Get(c)
	if err != nil {
		return nil, err
	}
	queue := decodeQueue(sess.Get(notificationsKey))
	if len(queue) == 0 {
		return []access.Notification{}, nil
	}
	sess.Delete(notificationsKey)
	if err := sess.Save(); err != nil {
		return nil, err
	}
	return queue, nil
}

func decodeQueue(v any) []access.Notification {
	raw, ok := v.(string)
	if !ok || raw == "" {
		return nil
	}
	var queue []access.Notification
	if err := json.Unmarshal([]byte(raw), &queue); err != nil {
		return nil
	}
	return queue
}
