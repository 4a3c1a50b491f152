package echoapi

import (
	"net/http"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/agenda/core"
	"github.com/trezcool/agenda/core/grade"
	"github.com/trezcool/agenda/core/note"
	"github.com/trezcool/agenda/core/planner"
	"github.com/trezcool/agenda/core/pomodoro"
	"github.com/trezcool/agenda/core/profile"
	"github.com/trezcool/agenda/core/resource"
	"github.com/trezcool/agenda/core/schedule"
	"github.com/trezcool/agenda/core/task"
	"github.com/trezcool/agenda/storage/persist"
)

type plannerApi struct {
	store      *planner.Store
	timer      *pomodoro.Timer
	validate   *validator.Validate
	translator ut.Translator
	now        func() time.Time
}

func (api *plannerApi) register(g *echo.Group) {
	tg := g.Group("/tasks")
	tg.GET("", api.queryTasks)
	tg.POST("", api.createTask)
	tg.GET("/calendar", api.calendar)
	tg.GET("/notifications", api.notifications)
	tg.GET("/:id", api.retrieveTask)
	tg.PATCH("/:id/toggle", api.toggleTask)
	tg.DELETE("/:id", api.destroyTask)

	gg := g.Group("/grades")
	gg.GET("", api.gradeReport)
	gg.POST("", api.createGrade)
	gg.DELETE("/:id", api.destroyGrade)

	ng := g.Group("/notes")
	ng.GET("", api.queryNotes)
	ng.POST("", api.createNote)
	ng.PUT("/:id", api.updateNote)
	ng.DELETE("/:id", api.destroyNote)

	rg := g.Group("/resources")
	rg.GET("", api.queryResources)
	rg.POST("", api.createResource)
	rg.PUT("/:id", api.updateResource)
	rg.PATCH("/:id/toggle", api.toggleResource)
	rg.DELETE("/:id", api.destroyResource)

	sg := g.Group("/schedule")
	sg.GET("", api.weekSchedule)
	sg.GET("/today", api.todaySchedule)
	sg.POST("", api.createScheduleItem)
	sg.PUT("/:id", api.updateScheduleItem)
	sg.DELETE("/:id", api.destroyScheduleItem)

	g.GET("/profile", api.retrieveProfile)
	g.PUT("/profile", api.updateProfile)

	g.GET("/dashboard", api.dashboard)
	g.GET("/achievements", api.achievements)
	g.GET("/export", api.export)

	pg := g.Group("/pomodoro")
	pg.GET("", api.pomodoroState)
	pg.POST("/toggle", api.togglePomodoro)
	pg.POST("/reset", api.resetPomodoro)
	pg.POST("/mode", api.setPomodoroMode)
	pg.PUT("/settings", api.updatePomodoroSettings)
}

// Tasks

func (api *plannerApi) queryTasks(ctx echo.Context) error {
	filter := new(task.QueryFilter)
	if err := ctx.Bind(filter); err != nil {
		return ctx.JSON(http.StatusOK, []task.Task{})
	}
	filter.Clean()
	return ctx.JSON(http.StatusOK, task.Sort(task.Filter(api.store.Tasks(), *filter)))
}

func (api *plannerApi) createTask(ctx echo.Context) error {
	var data task.NewTask
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewTask")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, api.store.AddTask(data.ToTask()))
}

func (api *plannerApi) retrieveTask(ctx echo.Context) error {
	t, err := api.store.Task(ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "retrieving task")
	}
	return ctx.JSON(http.StatusOK, t)
}

func (api *plannerApi) toggleTask(ctx echo.Context) error {
	t, err := api.store.ToggleTask(ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "toggling task")
	}
	return ctx.JSON(http.StatusOK, t)
}

func (api *plannerApi) destroyTask(ctx echo.Context) error {
	if err := api.store.DeleteTask(ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting task")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *plannerApi) calendar(ctx echo.Context) error {
	now := api.now()
	year, month := now.Year(), int(now.Month())
	err := echo.QueryParamsBinder(ctx).
		Int("year", &year).
		Int("month", &month).
		BindError()
	if err != nil {
		return err
	}
	if month < 1 || month > 12 {
		return core.NewValidationError(nil, core.FieldError{Field: "month", Error: "month must be between 1 and 12"})
	}
	return ctx.JSON(http.StatusOK, task.Calendar(api.store.Tasks(), year, time.Month(month), now.Location()))
}

func (api *plannerApi) notifications(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.store.Notifications(api.now()))
}

// Grades

func (api *plannerApi) gradeReport(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.store.GradeReport())
}

func (api *plannerApi) createGrade(ctx echo.Context) error {
	var data grade.NewGrade
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewGrade")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, api.store.AddGrade(data.ToGrade()))
}

func (api *plannerApi) destroyGrade(ctx echo.Context) error {
	if err := api.store.DeleteGrade(ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting grade")
	}
	return ctx.NoContent(http.StatusNoContent)
}

// Notes

func (api *plannerApi) queryNotes(ctx echo.Context) error {
	filter := new(note.QueryFilter)
	if err := ctx.Bind(filter); err != nil {
		return ctx.JSON(http.StatusOK, []note.Note{})
	}
	filter.Clean()
	return ctx.JSON(http.StatusOK, note.Filter(api.store.Notes(), *filter))
}

func (api *plannerApi) createNote(ctx echo.Context) error {
	var data note.NewNote
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewNote")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, api.store.AddNote(data))
}

func (api *plannerApi) updateNote(ctx echo.Context) error {
	var data note.NewNote
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewNote")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}
	n, err := api.store.UpdateNote(ctx.Param("id"), data)
	if err != nil {
		return errors.Wrap(err, "updating note")
	}
	return ctx.JSON(http.StatusOK, n)
}

func (api *plannerApi) destroyNote(ctx echo.Context) error {
	if err := api.store.DeleteNote(ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting note")
	}
	return ctx.NoContent(http.StatusNoContent)
}

// Resources

func (api *plannerApi) queryResources(ctx echo.Context) error {
	filter := new(resource.QueryFilter)
	if err := ctx.Bind(filter); err != nil {
		return ctx.JSON(http.StatusOK, []resource.Resource{})
	}
	filter.Clean()
	return ctx.JSON(http.StatusOK, resource.Filter(api.store.Resources(), *filter))
}

func (api *plannerApi) createResource(ctx echo.Context) error {
	var data resource.NewResource
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewResource")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, api.store.AddResource(data.ToResource()))
}

func (api *plannerApi) updateResource(ctx echo.Context) error {
	var data resource.NewResource
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewResource")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}
	r, err := api.store.UpdateResource(ctx.Param("id"), data)
	if err != nil {
		return errors.Wrap(err, "updating resource")
	}
	return ctx.JSON(http.StatusOK, r)
}

func (api *plannerApi) toggleResource(ctx echo.Context) error {
	r, err := api.store.ToggleResource(ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "toggling resource")
	}
	return ctx.JSON(http.StatusOK, r)
}

func (api *plannerApi) destroyResource(ctx echo.Context) error {
	if err := api.store.DeleteResource(ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting resource")
	}
	return ctx.NoContent(http.StatusNoContent)
}

// Schedule

func (api *plannerApi) weekSchedule(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, schedule.ByDay(api.store.Schedule()))
}

func (api *plannerApi) todaySchedule(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, schedule.Today(api.store.Schedule(), api.now()))
}

func (api *plannerApi) createScheduleItem(ctx echo.Context) error {
	var data schedule.NewItem
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewItem")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, api.store.AddScheduleItem(data.ToItem()))
}

func (api *plannerApi) updateScheduleItem(ctx echo.Context) error {
	var data schedule.NewItem
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewItem")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}
	it, err := api.store.UpdateScheduleItem(ctx.Param("id"), data)
	if err != nil {
		return errors.Wrap(err, "updating schedule item")
	}
	return ctx.JSON(http.StatusOK, it)
}

func (api *plannerApi) destroyScheduleItem(ctx echo.Context) error {
	if err := api.store.DeleteScheduleItem(ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting schedule item")
	}
	return ctx.NoContent(http.StatusNoContent)
}

// Profile & overviews

func (api *plannerApi) retrieveProfile(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.store.Profile())
}

func (api *plannerApi) updateProfile(ctx echo.Context) error {
	var data profile.UpdateProfile
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateProfile")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}
	api.store.UpdateProfile(data.ToProfile())
	return ctx.JSON(http.StatusOK, api.store.Profile())
}

func (api *plannerApi) dashboard(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.store.Dashboard(api.now()))
}

func (api *plannerApi) achievements(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.store.Achievements())
}

func (api *plannerApi) export(ctx echo.Context) error {
	now := api.now()
	data, err := persist.Export(api.store.Snapshot(), now)
	if err != nil {
		return errors.Wrap(err, "exporting")
	}
	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+persist.ExportFilename(now)+`"`)
	return ctx.Blob(http.StatusOK, echo.MIMEApplicationJSONCharsetUTF8, data)
}

// Pomodoro

type PomodoroModeRequest struct {
	Mode string `json:"mode" validate:"required"`
}

func (api *plannerApi) pomodoroState(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.timer.State())
}

func (api *plannerApi) togglePomodoro(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.timer.Toggle())
}

func (api *plannerApi) resetPomodoro(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.timer.Reset())
}

func (api *plannerApi) setPomodoroMode(ctx echo.Context) error {
	var data PomodoroModeRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to PomodoroModeRequest")
	}
	if err := api.validate.Struct(&data); err != nil {
		return err
	}
	state, err := api.timer.SetMode(pomodoro.Mode(data.Mode))
	if err != nil {
		return core.NewValidationError(nil, core.FieldError{Field: "mode", Error: err.Error()})
	}
	return ctx.JSON(http.StatusOK, state)
}

func (api *plannerApi) updatePomodoroSettings(ctx echo.Context) error {
	var data pomodoro.Settings
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Settings")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, api.timer.UpdateSettings(data))
}
