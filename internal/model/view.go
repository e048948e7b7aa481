package model

import "github.com/samber/lo"

// 各接口的固定输出形状。嵌套的父记录不再携带 signups，避免
// Camper -> Signup -> Camper 的循环序列化

type CamperView struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Age  int    `json:"age"`
}

type CamperDetail struct {
	CamperView
	Signups []SignupWithActivity `json:"signups"`
}

type ActivityView struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Difficulty int    `json:"difficulty"`
}

type ActivityDetail struct {
	ActivityView
	Signups []SignupWithCamper `json:"signups"`
}

type SignupView struct {
	ID         uint `json:"id"`
	Time       int  `json:"time"`
	CamperID   uint `json:"camper_id"`
	ActivityID uint `json:"activity_id"`
}

type SignupWithActivity struct {
	SignupView
	Activity *ActivityView `json:"activity"`
}

type SignupWithCamper struct {
	SignupView
	Camper *CamperView `json:"camper"`
}

type SignupDetail struct {
	SignupView
	Camper   *CamperView   `json:"camper"`
	Activity *ActivityView `json:"activity"`
}

func NewCamperView(c *Camper) CamperView {
	return CamperView{ID: c.ID, Name: c.Name, Age: c.Age}
}

func NewCamperViews(campers []Camper) []CamperView {
	return lo.Map(campers, func(c Camper, _ int) CamperView {
		return NewCamperView(&c)
	})
}

// NewCamperDetail 需要预加载 Signups.Activity
func NewCamperDetail(c *Camper) CamperDetail {
	return CamperDetail{
		CamperView: NewCamperView(c),
		Signups: lo.Map(c.Signups, func(s Signup, _ int) SignupWithActivity {
			return SignupWithActivity{
				SignupView: NewSignupView(&s),
				Activity:   activityRef(s.Activity),
			}
		}),
	}
}

func NewActivityView(a *Activity) ActivityView {
	return ActivityView{ID: a.ID, Name: a.Name, Difficulty: a.Difficulty}
}

func NewActivityViews(activities []Activity) []ActivityView {
	return lo.Map(activities, func(a Activity, _ int) ActivityView {
		return NewActivityView(&a)
	})
}

// NewActivityDetail 需要预加载 Signups.Camper
func NewActivityDetail(a *Activity) ActivityDetail {
	return ActivityDetail{
		ActivityView: NewActivityView(a),
		Signups: lo.Map(a.Signups, func(s Signup, _ int) SignupWithCamper {
			return SignupWithCamper{
				SignupView: NewSignupView(&s),
				Camper:     camperRef(s.Camper),
			}
		}),
	}
}

func NewSignupView(s *Signup) SignupView {
	return SignupView{ID: s.ID, Time: s.Time, CamperID: s.CamperID, ActivityID: s.ActivityID}
}

// NewSignupDetail 需要预加载 Camper 和 Activity
func NewSignupDetail(s *Signup) SignupDetail {
	return SignupDetail{
		SignupView: NewSignupView(s),
		Camper:     camperRef(s.Camper),
		Activity:   activityRef(s.Activity),
	}
}

func camperRef(c *Camper) *CamperView {
	if c == nil {
		return nil
	}
	v := NewCamperView(c)
	return &v
}

func activityRef(a *Activity) *ActivityView {
	if a == nil {
		return nil
	}
	v := NewActivityView(a)
	return &v
}
