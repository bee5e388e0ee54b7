// Package quartz schedules the task definitions of sys_quartz_job on
// github.com/robfig/cron/v3.
//
// A task calls BeanName.MethodName with Params through the lookup invoker,
// so any registered lookup function can be scheduled. Cron expressions carry
// a seconds field ("0/5 * * * * ?"). Pausing removes the cron entry and keeps
// the definition so the task can be resumed.
package quartz
