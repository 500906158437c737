package game

import "image"

// 图像资源名称
const (
	ImgFadeBlack      = "fade_transition"
	ImgFadeWhite      = "fade_transition2"
	ImgBackground     = "bgrnd_space"
	ImgBossBackground = "bgrnd_space_boss"
	ImgStar           = "star_normal"
	ImgStarPiece      = "star_piece"
	ImgControls       = "ttl_controls"
	ImgLogo           = "ttl_logo"
	ImgStartText      = "ttl_start"
	ImgCurrentLevel   = "ttl_current_level"
	ImgLevelDigits    = "ttl_numbers"
	ImgTurretHandle   = "laser_blaster_handle"
	ImgTurretIdle     = "laser_blaster_idle"
	ImgTurretSheet    = "laser_blaster_anim_sheet"
	ImgLaserShot      = "laser_shot"
	ImgHoleGenerator  = "blackhole_generator"
	ImgHoleClouds     = "blackhole_clouds"
	ImgBossBody       = "boss_back_part"
	ImgBossCore       = "boss_cockpit"
	ImgBossCoreHit    = "boss_cockpit_inv"
	ImgBossEngine1    = "boss_engine1"
	ImgBossEngine1Hit = "boss_engine1_inv"
	ImgBossEngine2    = "boss_engine2"
	ImgBossEngine2Hit = "boss_engine2_inv"
	ImgPlayerSheet    = "player_ship_anim_sheet"
	ImgPlayerHitbox   = "player_ship"
	ImgPlayerBroken   = "player_ship_broken"
	ImgHealthBarSheet = "health_bar_anim_sheet"
	ImgWinScreen      = "win_image"
	ImgGameWonScreen  = "game_won"
)

// ImageSource 按名称提供已解码的图像
// Frames 对网格图返回切分后的帧，对单图返回仅含自身的切片
type ImageSource interface {
	Image(name string) *image.NRGBA
	Frames(name string) []*image.NRGBA
}
