// Package log writes one JSON object per line for service events: startup,
// user mutations, rejected input and storage failures.
package log

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	levelInfo  = "info"
	levelAudit = "audit"
	levelWarn  = "warn"
	levelError = "error"
)

type event struct {
	TS     string         `json:"ts"`
	Level  string         `json:"level"`
	Action string         `json:"action,omitempty"`
	ReqID  string         `json:"req_id,omitempty"`
	IP     string         `json:"ip,omitempty"`
	Method string         `json:"method,omitempty"`
	Path   string         `json:"path,omitempty"`
	Status int            `json:"status,omitempty"`
	Err    string         `json:"err,omitempty"`
	Fields map[string]any `json:"fields,omitempty"`
}

// fromRequest copies request metadata. Status is whatever the handler set
// before logging, so set it first.
func (e *event) fromRequest(c *fiber.Ctx) {
	e.IP = c.IP()
	e.Method = c.Method()
	e.Path = c.Path()
	e.Status = c.Response().StatusCode()
	if rid, ok := c.Locals("requestid").(string); ok {
		e.ReqID = rid
	}
}

func emit(level string, c *fiber.Ctx, action string, err error, fields map[string]any) {
	e := event{TS: time.Now().UTC().Format(time.RFC3339), Level: level, Action: action, Fields: fields}
	if c != nil {
		e.fromRequest(c)
	}
	if err != nil {
		e.Err = err.Error()
	}
	b, mErr := json.Marshal(e)
	if mErr != nil {
		log.Printf(`{"level":"error","action":"log.encode","err":%q}`, mErr.Error())
		return
	}
	log.Println(string(b))
}

// Info records a process or request event. c may be nil.
func Info(c *fiber.Ctx, action string, fields map[string]any) {
	emit(levelInfo, c, action, nil, fields)
}

// Audit records a completed create, update or delete.
func Audit(c *fiber.Ctx, action string, fields map[string]any) {
	emit(levelAudit, c, action, nil, fields)
}

func Warn(c *fiber.Ctx, action string, fields map[string]any) {
	emit(levelWarn, c, action, nil, fields)
}

func Error(c *fiber.Ctx, action string, err error, fields map[string]any) {
	emit(levelError, c, action, err, fields)
}
