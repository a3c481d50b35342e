// Package authz реализует движок авторизации платформы.
//
// Решение о доступе складывается из двух уровней. Сначала область видимости:
// ресурс, которого актор вообще не видит, неотличим от несуществующего и
// даёт errs.ErrNotFound. Затем предикат действия: видимый ресурс, на котором
// действие запрещено, даёт errs.ErrForbidden.
//
// Предикаты — чистые функции, составляемые через And, Or и Not,
// по одному составному предикату на каждое действие.
package authz

import (
	"github.com/magabrotheeeer/course-platform/internal/errs"
	"github.com/magabrotheeeer/course-platform/internal/models"
)

// Actor — аутентифицированная сторона, выполняющая действие.
type Actor struct {
	UID           string
	Username      string
	Role          string
	Authenticated bool
}

// IsModerator сообщает, состоит ли актор в группе модераторов.
func (a Actor) IsModerator() bool {
	return a.Authenticated && a.Role == models.RoleModerator
}

// Resource — объект, к которому запрошен доступ. Owner возвращает UID
// владельца или nil, если ресурс ничейный: такой ресурс не проходит
// ни одну проверку владения ни для кого, включая модераторов.
type Resource interface {
	Owner() *string
}

// Action — тип действия над ресурсом.
type Action string

// Поддерживаемые действия.
const (
	ActionList     Action = "list"
	ActionRetrieve Action = "retrieve"
	ActionCreate   Action = "create"
	ActionUpdate   Action = "update"
	ActionDestroy  Action = "destroy"
)

// Predicate — элементарное правило доступа: актор и целевой ресурс
// (nil для действий без конкретного экземпляра, например create).
type Predicate func(a Actor, r Resource) bool

// And возвращает предикат, истинный, когда истинны все составляющие.
func And(preds ...Predicate) Predicate {
	return func(a Actor, r Resource) bool {
		for _, p := range preds {
			if !p(a, r) {
				return false
			}
		}
		return true
	}
}

// Or возвращает предикат, истинный, когда истинен хотя бы один составляющий.
func Or(preds ...Predicate) Predicate {
	return func(a Actor, r Resource) bool {
		for _, p := range preds {
			if p(a, r) {
				return true
			}
		}
		return false
	}
}

// Not инвертирует предикат.
func Not(p Predicate) Predicate {
	return func(a Actor, r Resource) bool {
		return !p(a, r)
	}
}

// Authenticated — актор аутентифицирован.
func Authenticated(a Actor, _ Resource) bool {
	return a.Authenticated
}

// IsModerator — актор состоит в группе модераторов. Не зависит от ресурса.
func IsModerator(a Actor, _ Resource) bool {
	return a.IsModerator()
}

// IsOwner — актор владеет ресурсом. Ничейный ресурс (OwnerUID == nil)
// не принадлежит никому, поэтому проверка всегда ложна.
func IsOwner(a Actor, r Resource) bool {
	if !a.Authenticated || r == nil {
		return false
	}
	owner := r.Owner()
	if owner == nil {
		return false
	}
	return *owner == a.UID
}

// rules — составной предикат на каждое действие. Таблица одинакова для
// курсов и уроков: модераторам запрещено создавать и удалять контент,
// но разрешено редактировать чужой; удалять ресурс может только владелец,
// причём не-модератор, чтобы роль модератора не служила лазейкой для удаления.
var rules = map[Action]Predicate{
	ActionList:     Authenticated,
	ActionRetrieve: Authenticated,
	ActionCreate:   And(Authenticated, Not(IsModerator)),
	ActionUpdate:   And(Authenticated, Or(IsModerator, IsOwner)),
	ActionDestroy:  And(Authenticated, IsOwner, Not(IsModerator)),
}

// Allowed сообщает, разрешает ли предикат действия act доступ актора a к r.
func Allowed(a Actor, act Action, r Resource) bool {
	p, ok := rules[act]
	if !ok {
		return false
	}
	return p(a, r)
}

// Kind — класс ресурса, определяющий правила области видимости.
type Kind string

// Классы ресурсов.
const (
	KindCourse Kind = "course"
	KindLesson Kind = "lesson"
)

// CanSee сообщает, попадает ли ресурс в область видимости актора.
// Каталог курсов на чтение открыт каждому аутентифицированному;
// уроки и любые мутации видны модератору целиком, остальным — только свои.
func CanSee(a Actor, act Action, kind Kind, r Resource) bool {
	if !a.Authenticated {
		return false
	}
	if kind == KindCourse && (act == ActionList || act == ActionRetrieve) {
		return true
	}
	if a.IsModerator() {
		return true
	}
	return IsOwner(a, r)
}

// AuthorizeAction проверяет действие без конкретного экземпляра ресурса
// (create, list): область видимости здесь не участвует, поэтому отказ
// предиката возвращается как errs.ErrForbidden.
func AuthorizeAction(a Actor, act Action) error {
	if !a.Authenticated {
		return errs.ErrUnauthorized
	}
	if !Allowed(a, act, nil) {
		return errs.ErrForbidden
	}
	return nil
}

// Authorize применяет оба уровня проверки к конкретному экземпляру ресурса.
// Недоступный по области видимости ресурс возвращает errs.ErrNotFound,
// чтобы не раскрывать сам факт его существования; видимый, но запрещённый —
// errs.ErrForbidden. Неаутентифицированный актор получает errs.ErrUnauthorized.
func Authorize(a Actor, act Action, kind Kind, r Resource) error {
	if !a.Authenticated {
		return errs.ErrUnauthorized
	}
	if !CanSee(a, act, kind, r) {
		return errs.ErrNotFound
	}
	if !Allowed(a, act, r) {
		return errs.ErrForbidden
	}
	return nil
}
