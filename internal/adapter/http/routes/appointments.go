package routes

import (
	"bahia_gestao/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathAppointments = "/appointments"

func addAppointmentRoutes(rg *gin.RouterGroup, appointmentHandler *handlers.AppointmentHandler) {
	appointments := rg.Group(PathAppointments)
	{
		appointments.GET("", appointmentHandler.ListAppointments)
		appointments.POST("", appointmentHandler.CreateAppointment)
		appointments.GET("/upcoming", appointmentHandler.UpcomingAppointments)
		appointments.GET("/calendar", appointmentHandler.AppointmentCalendar)
		appointments.GET("/export.csv", appointmentHandler.ExportAppointmentsCSV)
		appointments.GET("/export.pdf", appointmentHandler.ExportAppointmentsPDF)
		appointments.GET("/:id", appointmentHandler.GetAppointment)
		appointments.PUT("/:id", appointmentHandler.UpdateAppointment)
		appointments.PATCH("/:id/status", appointmentHandler.UpdateAppointmentStatus)
		appointments.DELETE("/:id", appointmentHandler.DeleteAppointment)
	}
}
