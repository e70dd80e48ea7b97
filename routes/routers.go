package routes

import (
	"context"
	"fmt"
	"net/http"

	"hms/config"
	"hms/controllers"
	middlewares "hms/middleware"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"

	"github.com/redis/go-redis/v9"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, cld *cloudinary.Cloudinary, m *melody.Melody) {

	controllers.SetNotifier(m)

	v1 := router.Group("/api/v1")

	// Tài khoản
	v1.POST("/auth/register", controllers.Register)
	v1.POST("/auth/login", controllers.Login)
	v1.POST("/auth/google", controllers.AuthGoogle)
	v1.GET("/profile", controllers.GetProfile)
	v1.GET("/users", middlewares.AuthMiddleware(1), controllers.GetUsers)
	v1.PUT("/userStatus", middlewares.AuthMiddleware(1), controllers.ChangeUserStatus)

	// Phòng
	v1.GET("/room", controllers.GetRooms)
	v1.GET("/room/:id", controllers.GetRoomDetail)
	v1.GET("/availableRooms", controllers.GetAvailableRooms)
	v1.POST("/room", middlewares.AuthMiddleware(1), controllers.CreateRoom)
	v1.PUT("/roomUpdate", middlewares.AuthMiddleware(1), controllers.UpdateRoom)
	v1.PUT("/roomStatus", middlewares.AuthMiddleware(1, 2, 3, 4), controllers.ChangeRoomStatus)

	// Đặt phòng
	v1.POST("/reservation", controllers.CreateReservation)
	v1.GET("/reservation", middlewares.AuthMiddleware(1, 2), controllers.GetReservations)
	v1.GET("/reservation/:id", controllers.GetReservationDetail)
	v1.GET("/myReservations", controllers.GetReservationsByUser)
	v1.POST("/reservationConfirm", middlewares.AuthMiddleware(1, 2), controllers.ConfirmReservation)
	v1.POST("/reservationCheckin", middlewares.AuthMiddleware(1, 2), controllers.CheckInReservation)
	v1.POST("/reservationCheckout", middlewares.AuthMiddleware(1, 2), controllers.CheckOutReservation)
	v1.POST("/reservationCancel", controllers.CancelReservation)

	// Thanh toán
	v1.POST("/sendPay", controllers.SendPay)
	v1.POST("/paymentWebhook", controllers.PaymentWebhook)

	// Hóa đơn
	v1.GET("/invoices", middlewares.AuthMiddleware(1, 2), controllers.GetInvoices)
	v1.GET("/invoices/:id", middlewares.AuthMiddleware(1, 2), controllers.GetInvoiceDetail)
	v1.PUT("/invoicePayment", middlewares.AuthMiddleware(1, 2), controllers.UpdatePaymentStatus)

	// Cấu hình hệ thống
	v1.GET("/settings", middlewares.AuthMiddleware(1, 2), controllers.GetSettings)
	v1.PUT("/settings", middlewares.AuthMiddleware(1), controllers.UpdateSettingSection)

	// Đánh giá và liên hệ
	v1.POST("/feedback", controllers.CreateFeedback)
	v1.GET("/feedback", controllers.GetFeedbacks)
	v1.POST("/contact", controllers.CreateContact)
	v1.GET("/contact", middlewares.AuthMiddleware(1, 2), controllers.GetContacts)
	v1.PUT("/contact/:id/resolve", middlewares.AuthMiddleware(1, 2), controllers.ResolveContact)

	v1.POST("/img/multi-upload", func(c *gin.Context) {
		form, er := c.MultipartForm()
		if er != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file"})
		}
		files := form.File["files"]
		if len(files) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file"})
			return
		}

		var urls []string
		for _, file := range files {
			src, err := file.Open()
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Lỗi khi mở file"})
				return
			}
			defer src.Close()

			ctx := context.Background()
			resp, err := config.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "rooms"})
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload thất bại"})
				return
			}
			urls = append(urls, resp.SecureURL)
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload thành công",
			"urls":    urls,
		})
	})

	v1.POST("/img/upload", func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file"})
			return
		}

		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Lỗi khi mở file"})
			return
		}
		defer src.Close()

		ctx := context.Background()
		resp, err := config.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "avatars"})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload thất bại"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload avatar thành công",
			"url":     resp.SecureURL,
		})
	})

	//ws
	v1.GET("/test-broadcast", func(c *gin.Context) {
		message := []byte("Thông báo từ backend: Tin nhắn mới!")
		fmt.Println("Broadcasting message:", string(message))
		m.Broadcast(message)
		c.String(200, "Broadcast message sent!")
	})

}
