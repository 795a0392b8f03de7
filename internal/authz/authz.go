// Package authz держит единую ролевую политику для всех изменяющих операций.
package authz

import (
	"fmt"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/shenikar/safety_reporting_system/internal/models"
	"github.com/sirupsen/logrus"
)

const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && r.act == p.act
`

// DefaultPolicies - кто из ролей может менять инциденты и оповещения
var DefaultPolicies = [][]string{
	{string(models.RoleOfficer), "incident", "transition"},
	{string(models.RoleLeader), "incident", "transition"},
	{string(models.RoleAdmin), "incident", "transition"},

	{string(models.RoleOfficer), "alert", "create"},
	{string(models.RoleLeader), "alert", "create"},
	{string(models.RoleAdmin), "alert", "create"},

	{string(models.RoleOfficer), "alert", "dismiss"},
	{string(models.RoleLeader), "alert", "dismiss"},
	{string(models.RoleAdmin), "alert", "dismiss"},
}

type Authorizer struct {
	enforcer *casbin.Enforcer
	logger   *logrus.Logger
}

func NewAuthorizer(policies [][]string, logger *logrus.Logger) (*Authorizer, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("failed to parse rbac model: %w", err)
	}
	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("failed to create enforcer: %w", err)
	}
	if len(policies) > 0 {
		if _, err := enforcer.AddPolicies(policies); err != nil {
			return nil, fmt.Errorf("failed to load policies: %w", err)
		}
	}
	return &Authorizer{enforcer: enforcer, logger: logger}, nil
}

// Allowed - ошибка движка трактуется как запрет
func (a *Authorizer) Allowed(role models.Role, resource, action string) bool {
	if role == "" {
		return false
	}
	ok, err := a.enforcer.Enforce(string(role), resource, action)
	if err != nil {
		a.logger.WithError(err).WithFields(logrus.Fields{
			"role":     role,
			"resource": resource,
			"action":   action,
		}).Error("Authorization check failed")
		return false
	}
	return ok
}
