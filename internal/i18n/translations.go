package i18n

var translations = map[Locale]map[string]string{
	LocaleEN: {
		"appTitle":                "EasyRent Pickup",
		"appSubtitle":             "Self-service pickup and return",
		"authWelcome":             "Check in to your reservation",
		"authError":               "Confirmation code or phone digits do not match.",
		"confirmationCodeLabel":   "Confirmation code",
		"phoneDigitsLabel":        "Last 4 digits of phone",
		"continue":                "Continue",
		"pickupTitle":             "Vehicle Pickup",
		"myRentalTitle":           "My Rental",
		"carReadyTitle":           "Your car is ready",
		"carActiveTitle":          "Your trip is in progress",
		"confirmationNumberLabel": "Confirmation No.",
		"stepDeposit":             "Security Deposit",
		"stepDepositAction":       "Pay",
		"stepDepositNote":         "Pre-authorization hold, released after return",
		"stepInspection":          "Vehicle Inspection",
		"stepInspectionAction":    "Inspect",
		"stepContract":            "Rental Contract",
		"stepContractAction":      "Sign",
		"stepReturn":              "Return Vehicle",
		"stepReturnAction":        "Return",
		"stepReturnNote":          "Due ",
		"view":                    "View",
		"statusCaptured":          "Captured",
		"depositTitle":            "Security Deposit",
		"depositSuccessTitle":     "Deposit secured",
		"depositAmount":           "Deposit amount",
		"transactionId":           "Transaction ID",
		"status":                  "Status",
		"nameMismatchError":       "Cardholder name must match the main driver on the order.",
		"totalPrice":              "Total price",
		"preAuthDeposit":          "Pre-authorized deposit",
		"inspectionTitle":         "Vehicle Inspection",
		"dashboardTitle":          "Dashboard",
		"mileageLabel":            "Odometer (km)",
		"fuelLevelLabel":          "Fuel level",
		"exteriorTitle":           "Exterior photos",
		"damagePhotos":            "Damage photos",
		"continueToContract":      "Continue to contract",
		"contractTitle":           "Rental Contract",
		"bookingInfoTitle":        "Booking information",
		"orderNumber":             "Order number",
		"confirmationNumber":      "Confirmation number",
		"carModel":                "Car model",
		"pickupTime":              "Pickup time",
		"pickupLocation":          "Pickup location",
		"returnTime":              "Return time",
		"returnLocation":          "Return location",
		"customerInfoTitle":       "Customer information",
		"mainDriver":              "Main driver",
		"contactPhone":            "Contact phone",
		"signAndComplete":         "Sign and complete",
		"rentalContract":          "Rental Contract",
		"contractNumber":          "Contract number",
		"signingDate":             "Signing date",
		"contractSignedTitle":     "Contract signed",
		"startRental":             "Start rental",
		"reservationDetailsTitle": "Reservation details",
		"vehicleDetails":          "Vehicle details",
		"parkingSpot":             "Parking spot",
		"licensePlate":            "License plate",
		"color":                   "Color",
		"controls":                "Remote controls",
		"actionFlash":             "Flash lights",
		"actionHonk":              "Honk",
		"actionLock":              "Lock",
		"actionUnlock":            "Unlock",
		"actionSent":              "Command sent",
		"returnTitle":             "Return Vehicle",
		"checkLocation":           "Checking return location...",
		"locationOk":              "Return location confirmed",
		"endTrip":                 "End trip",
		"tripEndedTitle":          "Trip ended",
		"tripEndedMessage":        "Thanks for riding with us. Your deposit hold will be released within 7 days.",
		"digitalKeyDisabled":      "Digital key disabled",
		"backToHome":              "Back to home",
		"pickupInstructionsTitle": "Pickup steps",
		"pickupLocationTitle":     "Pickup location",
		"km":                      "km",
	},
	LocaleZHTW: {
		"appTitle":                "易租取車",
		"appSubtitle":             "自助取車與還車",
		"authWelcome":             "登入您的預訂",
		"authError":               "確認碼或手機末四碼不正確。",
		"confirmationCodeLabel":   "確認碼",
		"phoneDigitsLabel":        "手機末四碼",
		"continue":                "繼續",
		"pickupTitle":             "取車",
		"myRentalTitle":           "我的租約",
		"carReadyTitle":           "您的車輛已就緒",
		"carActiveTitle":          "行程進行中",
		"confirmationNumberLabel": "確認編號",
		"stepDeposit":             "押金",
		"stepDepositAction":       "支付",
		"stepDepositNote":         "預授權凍結，還車後解除",
		"stepInspection":          "車輛檢查",
		"stepInspectionAction":    "檢查",
		"stepContract":            "租賃合約",
		"stepContractAction":      "簽署",
		"stepReturn":              "還車",
		"stepReturnAction":        "還車",
		"stepReturnNote":          "到期日 ",
		"view":                    "查看",
		"statusCaptured":          "已凍結",
		"depositTitle":            "押金",
		"depositSuccessTitle":     "押金已完成",
		"depositAmount":           "押金金額",
		"transactionId":           "交易編號",
		"status":                  "狀態",
		"nameMismatchError":       "持卡人姓名必須與訂單上的主駕駛一致。",
		"totalPrice":              "總價",
		"preAuthDeposit":          "預授權押金",
		"inspectionTitle":         "車輛檢查",
		"dashboardTitle":          "儀表板",
		"mileageLabel":            "里程（公里）",
		"fuelLevelLabel":          "油量",
		"exteriorTitle":           "外觀照片",
		"damagePhotos":            "損傷照片",
		"continueToContract":      "前往簽約",
		"contractTitle":           "租賃合約",
		"bookingInfoTitle":        "預訂資訊",
		"orderNumber":             "訂單編號",
		"confirmationNumber":      "確認編號",
		"carModel":                "車型",
		"pickupTime":              "取車時間",
		"pickupLocation":          "取車地點",
		"returnTime":              "還車時間",
		"returnLocation":          "還車地點",
		"customerInfoTitle":       "客戶資訊",
		"mainDriver":              "主駕駛",
		"contactPhone":            "聯絡電話",
		"signAndComplete":         "簽署並完成",
		"rentalContract":          "租賃合約",
		"contractNumber":          "合約編號",
		"signingDate":             "簽署日期",
		"contractSignedTitle":     "合約已簽署",
		"startRental":             "開始用車",
		"reservationDetailsTitle": "預訂詳情",
		"vehicleDetails":          "車輛詳情",
		"parkingSpot":             "車位",
		"licensePlate":            "車牌",
		"color":                   "顏色",
		"controls":                "遠端控制",
		"actionFlash":             "閃燈",
		"actionHonk":              "鳴笛",
		"actionLock":              "上鎖",
		"actionUnlock":            "解鎖",
		"actionSent":              "指令已送出",
		"returnTitle":             "還車",
		"checkLocation":           "正在確認還車地點...",
		"locationOk":              "還車地點已確認",
		"endTrip":                 "結束行程",
		"tripEndedTitle":          "行程已結束",
		"tripEndedMessage":        "感謝您的使用。押金將於 7 天內解除凍結。",
		"digitalKeyDisabled":      "數位鑰匙已停用",
		"backToHome":              "返回首頁",
		"pickupInstructionsTitle": "取車步驟",
		"pickupLocationTitle":     "取車地點",
		"km":                      "公里",
	},
	LocaleJA: {
		"appTitle":                "イージーレント受取",
		"appSubtitle":             "セルフサービスの受取と返却",
		"authWelcome":             "予約にチェックイン",
		"authError":               "確認コードまたは電話番号下4桁が一致しません。",
		"confirmationCodeLabel":   "確認コード",
		"phoneDigitsLabel":        "電話番号下4桁",
		"continue":                "続行",
		"pickupTitle":             "車両受取",
		"myRentalTitle":           "マイレンタル",
		"carReadyTitle":           "車両の準備ができました",
		"carActiveTitle":          "ご利用中です",
		"confirmationNumberLabel": "確認番号",
		"stepDeposit":             "デポジット",
		"stepDepositAction":       "支払う",
		"stepDepositNote":         "与信枠の確保、返却後に解除",
		"stepInspection":          "車両点検",
		"stepInspectionAction":    "点検する",
		"stepContract":            "レンタル契約",
		"stepContractAction":      "署名する",
		"stepReturn":              "車両返却",
		"stepReturnAction":        "返却する",
		"stepReturnNote":          "期限 ",
		"view":                    "表示",
		"statusCaptured":          "確保済み",
		"depositTitle":            "デポジット",
		"depositSuccessTitle":     "デポジット完了",
		"depositAmount":           "デポジット金額",
		"transactionId":           "取引ID",
		"status":                  "ステータス",
		"nameMismatchError":       "カード名義は注文の主運転者と一致する必要があります。",
		"totalPrice":              "合計金額",
		"preAuthDeposit":          "与信デポジット",
		"inspectionTitle":         "車両点検",
		"dashboardTitle":          "ダッシュボード",
		"mileageLabel":            "走行距離（km）",
		"fuelLevelLabel":          "燃料残量",
		"exteriorTitle":           "外装写真",
		"damagePhotos":            "損傷写真",
		"continueToContract":      "契約へ進む",
		"contractTitle":           "レンタル契約",
		"bookingInfoTitle":        "予約情報",
		"orderNumber":             "注文番号",
		"confirmationNumber":      "確認番号",
		"carModel":                "車種",
		"pickupTime":              "受取時間",
		"pickupLocation":          "受取場所",
		"returnTime":              "返却時間",
		"returnLocation":          "返却場所",
		"customerInfoTitle":       "お客様情報",
		"mainDriver":              "主運転者",
		"contactPhone":            "連絡先電話番号",
		"signAndComplete":         "署名して完了",
		"rentalContract":          "レンタル契約",
		"contractNumber":          "契約番号",
		"signingDate":             "署名日",
		"contractSignedTitle":     "契約署名済み",
		"startRental":             "利用開始",
		"reservationDetailsTitle": "予約詳細",
		"vehicleDetails":          "車両詳細",
		"parkingSpot":             "駐車位置",
		"licensePlate":            "ナンバープレート",
		"color":                   "色",
		"controls":                "リモート操作",
		"actionFlash":             "ライト点滅",
		"actionHonk":              "クラクション",
		"actionLock":              "施錠",
		"actionUnlock":            "解錠",
		"actionSent":              "コマンド送信済み",
		"returnTitle":             "車両返却",
		"checkLocation":           "返却場所を確認中...",
		"locationOk":              "返却場所を確認しました",
		"endTrip":                 "利用終了",
		"tripEndedTitle":          "利用終了",
		"tripEndedMessage":        "ご利用ありがとうございました。デポジットは7日以内に解除されます。",
		"digitalKeyDisabled":      "デジタルキー無効",
		"backToHome":              "ホームへ戻る",
		"pickupInstructionsTitle": "受取手順",
		"pickupLocationTitle":     "受取場所",
		"km":                      "km",
	},
	LocaleKO: {
		"appTitle":                "이지렌트 픽업",
		"appSubtitle":             "셀프 픽업 및 반납",
		"authWelcome":             "예약 체크인",
		"authError":               "확인 코드 또는 전화번호 뒤 4자리가 일치하지 않습니다.",
		"confirmationCodeLabel":   "확인 코드",
		"phoneDigitsLabel":        "전화번호 뒤 4자리",
		"continue":                "계속",
		"pickupTitle":             "차량 픽업",
		"myRentalTitle":           "내 렌트",
		"carReadyTitle":           "차량이 준비되었습니다",
		"carActiveTitle":          "이용 중입니다",
		"confirmationNumberLabel": "확인 번호",
		"stepDeposit":             "보증금",
		"stepDepositAction":       "결제",
		"stepDepositNote":         "가승인 보류, 반납 후 해제",
		"stepInspection":          "차량 점검",
		"stepInspectionAction":    "점검",
		"stepContract":            "렌트 계약",
		"stepContractAction":      "서명",
		"stepReturn":              "차량 반납",
		"stepReturnAction":        "반납",
		"stepReturnNote":          "기한 ",
		"view":                    "보기",
		"statusCaptured":          "승인됨",
		"depositTitle":            "보증금",
		"depositSuccessTitle":     "보증금 완료",
		"depositAmount":           "보증금 금액",
		"transactionId":           "거래 ID",
		"status":                  "상태",
		"nameMismatchError":       "카드 소유자 이름은 주문의 주 운전자와 일치해야 합니다.",
		"totalPrice":              "총 금액",
		"preAuthDeposit":          "가승인 보증금",
		"inspectionTitle":         "차량 점검",
		"dashboardTitle":          "계기판",
		"mileageLabel":            "주행거리(km)",
		"fuelLevelLabel":          "연료량",
		"exteriorTitle":           "외관 사진",
		"damagePhotos":            "손상 사진",
		"continueToContract":      "계약으로 이동",
		"contractTitle":           "렌트 계약",
		"bookingInfoTitle":        "예약 정보",
		"orderNumber":             "주문 번호",
		"confirmationNumber":      "확인 번호",
		"carModel":                "차종",
		"pickupTime":              "픽업 시간",
		"pickupLocation":          "픽업 장소",
		"returnTime":              "반납 시간",
		"returnLocation":          "반납 장소",
		"customerInfoTitle":       "고객 정보",
		"mainDriver":              "주 운전자",
		"contactPhone":            "연락처",
		"signAndComplete":         "서명 및 완료",
		"rentalContract":          "렌트 계약",
		"contractNumber":          "계약 번호",
		"signingDate":             "서명일",
		"contractSignedTitle":     "계약 서명 완료",
		"startRental":             "이용 시작",
		"reservationDetailsTitle": "예약 상세",
		"vehicleDetails":          "차량 상세",
		"parkingSpot":             "주차 위치",
		"licensePlate":            "차량 번호판",
		"color":                   "색상",
		"controls":                "원격 제어",
		"actionFlash":             "라이트 점멸",
		"actionHonk":              "경적",
		"actionLock":              "잠금",
		"actionUnlock":            "잠금 해제",
		"actionSent":              "명령 전송됨",
		"returnTitle":             "차량 반납",
		"checkLocation":           "반납 위치 확인 중...",
		"locationOk":              "반납 위치 확인 완료",
		"endTrip":                 "이용 종료",
		"tripEndedTitle":          "이용 종료",
		"tripEndedMessage":        "이용해 주셔서 감사합니다. 보증금은 7일 이내에 해제됩니다.",
		"digitalKeyDisabled":      "디지털 키 비활성화",
		"backToHome":              "홈으로",
		"pickupInstructionsTitle": "픽업 절차",
		"pickupLocationTitle":     "픽업 장소",
		"km":                      "km",
	},
	LocaleTH: {
		"appTitle":                "อีซี่เร้นท์ รับรถ",
		"appSubtitle":             "รับและคืนรถด้วยตนเอง",
		"authWelcome":             "เช็คอินการจองของคุณ",
		"authError":               "รหัสยืนยันหรือเบอร์โทร 4 หลักสุดท้ายไม่ถูกต้อง",
		"confirmationCodeLabel":   "รหัสยืนยัน",
		"phoneDigitsLabel":        "เบอร์โทร 4 หลักสุดท้าย",
		"continue":                "ดำเนินการต่อ",
		"pickupTitle":             "รับรถ",
		"myRentalTitle":           "การเช่าของฉัน",
		"carReadyTitle":           "รถของคุณพร้อมแล้ว",
		"carActiveTitle":          "การเดินทางกำลังดำเนินอยู่",
		"confirmationNumberLabel": "หมายเลขยืนยัน",
		"stepDeposit":             "เงินมัดจำ",
		"stepDepositAction":       "ชำระ",
		"stepDepositNote":         "วงเงินถูกกันไว้ จะคืนหลังคืนรถ",
		"stepInspection":          "ตรวจสภาพรถ",
		"stepInspectionAction":    "ตรวจสอบ",
		"stepContract":            "สัญญาเช่า",
		"stepContractAction":      "ลงนาม",
		"stepReturn":              "คืนรถ",
		"stepReturnAction":        "คืนรถ",
		"stepReturnNote":          "กำหนด ",
		"view":                    "ดู",
		"statusCaptured":          "กันวงเงินแล้ว",
		"depositTitle":            "เงินมัดจำ",
		"depositSuccessTitle":     "มัดจำเรียบร้อย",
		"depositAmount":           "จำนวนเงินมัดจำ",
		"transactionId":           "รหัสธุรกรรม",
		"status":                  "สถานะ",
		"nameMismatchError":       "ชื่อผู้ถือบัตรต้องตรงกับผู้ขับขี่หลักในคำสั่งซื้อ",
		"totalPrice":              "ราคารวม",
		"preAuthDeposit":          "มัดจำแบบกันวงเงิน",
		"inspectionTitle":         "ตรวจสภาพรถ",
		"dashboardTitle":          "แผงหน้าปัด",
		"mileageLabel":            "เลขไมล์ (กม.)",
		"fuelLevelLabel":          "ระดับน้ำมัน",
		"exteriorTitle":           "ภาพภายนอก",
		"damagePhotos":            "ภาพความเสียหาย",
		"continueToContract":      "ไปที่สัญญา",
		"contractTitle":           "สัญญาเช่า",
		"bookingInfoTitle":        "ข้อมูลการจอง",
		"orderNumber":             "หมายเลขคำสั่งซื้อ",
		"confirmationNumber":      "หมายเลขยืนยัน",
		"carModel":                "รุ่นรถ",
		"pickupTime":              "เวลารับรถ",
		"pickupLocation":          "สถานที่รับรถ",
		"returnTime":              "เวลาคืนรถ",
		"returnLocation":          "สถานที่คืนรถ",
		"customerInfoTitle":       "ข้อมูลลูกค้า",
		"mainDriver":              "ผู้ขับขี่หลัก",
		"contactPhone":            "เบอร์ติดต่อ",
		"signAndComplete":         "ลงนามและเสร็จสิ้น",
		"rentalContract":          "สัญญาเช่า",
		"contractNumber":          "หมายเลขสัญญา",
		"signingDate":             "วันที่ลงนาม",
		"contractSignedTitle":     "ลงนามสัญญาแล้ว",
		"startRental":             "เริ่มใช้งาน",
		"reservationDetailsTitle": "รายละเอียดการจอง",
		"vehicleDetails":          "รายละเอียดรถ",
		"parkingSpot":             "ช่องจอด",
		"licensePlate":            "ทะเบียนรถ",
		"color":                   "สี",
		"controls":                "ควบคุมระยะไกล",
		"actionFlash":             "กะพริบไฟ",
		"actionHonk":              "บีบแตร",
		"actionLock":              "ล็อก",
		"actionUnlock":            "ปลดล็อก",
		"actionSent":              "ส่งคำสั่งแล้ว",
		"returnTitle":             "คืนรถ",
		"checkLocation":           "กำลังตรวจสอบตำแหน่งคืนรถ...",
		"locationOk":              "ยืนยันตำแหน่งคืนรถแล้ว",
		"endTrip":                 "จบการเดินทาง",
		"tripEndedTitle":          "จบการเดินทางแล้ว",
		"tripEndedMessage":        "ขอบคุณที่ใช้บริการ เงินมัดจำจะถูกคืนภายใน 7 วัน",
		"digitalKeyDisabled":      "ปิดใช้งานกุญแจดิจิทัล",
		"backToHome":              "กลับหน้าหลัก",
		"pickupInstructionsTitle": "ขั้นตอนการรับรถ",
		"pickupLocationTitle":     "สถานที่รับรถ",
		"km":                      "กม.",
	},
}
